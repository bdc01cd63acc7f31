package models

type RiskCategory string

const (
	RiskLow      RiskCategory = "Low"
	RiskModerate RiskCategory = "Moderate"
	RiskHigh     RiskCategory = "High"
	RiskCritical RiskCategory = "Critical"
)

var ValidRiskCategories = map[RiskCategory]bool{
	RiskLow: true, RiskModerate: true, RiskHigh: true, RiskCritical: true,
}

// RiskAssessment is derived from a PatientRecord on demand, never stored.
// FactorBreakdown holds the contributions that sum to Score. DisplayBreakdown
// is the coarser variant the breakdown chart has always shown; the two
// intentionally use different age and BMI rules.
type RiskAssessment struct {
	Score            int            `json:"score" example:"17"`
	Category         RiskCategory   `json:"category" example:"High"`
	Indicator        string         `json:"indicator" example:"🟠"`
	MortalityRiskPct float64        `json:"mortality_risk_pct" example:"8.5"`
	FactorBreakdown  map[string]int `json:"factor_breakdown"`
	DisplayBreakdown map[string]int `json:"display_breakdown"`
	Recommendations  []string       `json:"recommendations"`
}

type ScoredPatient struct {
	Patient    PatientRecord  `json:"patient"`
	Assessment RiskAssessment `json:"assessment"`
}

// ScatterPoint backs the age-vs-score dashboard chart.
type ScatterPoint struct {
	PatientID   uint         `json:"patient_id" example:"1"`
	Name        string       `json:"name" example:"Jane Doe"`
	Age         int          `json:"age" example:"54"`
	Score       int          `json:"score" example:"17"`
	Category    RiskCategory `json:"category" example:"High"`
	BMI         float64      `json:"bmi" example:"24.22"`
	SurgeryType SurgeryType  `json:"surgery_type" example:"Major"`
}

type DashboardStats struct {
	TotalPatients        int                   `json:"total_patients" example:"42"`
	HighRiskPatients     int                   `json:"high_risk_patients" example:"7"`
	AverageAge           float64               `json:"average_age" example:"53.4"`
	EmergencyCases       int                   `json:"emergency_cases" example:"3"`
	CategoryDistribution map[RiskCategory]int  `json:"category_distribution"`
	ScoresBySurgeryType  map[SurgeryType][]int `json:"scores_by_surgery_type"`
	ScatterPoints        []ScatterPoint        `json:"scatter_points"`
}
