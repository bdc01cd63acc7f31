package risk

import (
	"math"

	"surgirisk/internal/models"
)

// MaxScore caps the total risk score.
const MaxScore = 30

// Factor names used as breakdown keys.
const (
	FactorAge           = "Age Factor"
	FactorBMI           = "BMI Factor"
	FactorComorbidities = "Comorbidities"
	FactorSurgery       = "Surgery Complexity"
	FactorASA           = "ASA Class"
)

var surgeryTypeScores = map[models.SurgeryType]int{
	models.SurgeryMinor:    1,
	models.SurgeryModerate: 3,
	models.SurgeryMajor:    6,
	models.SurgeryComplex:  9,
}

// defaultSurgeryScore applies when the surgery type is not in the table.
const defaultSurgeryScore = 3

func ageFactor(age int) int {
	switch {
	case age < 18:
		return 1
	case age < 40:
		return 2
	case age < 65:
		return 4
	default:
		return 7
	}
}

// bmiFactor checks severe obesity before the >30 band so the higher
// contribution wins.
func bmiFactor(bmi float64) int {
	switch {
	case bmi < 18.5:
		return 3
	case bmi > 35:
		return 6
	case bmi > 30:
		return 4
	default:
		return 0
	}
}

func comorbidityFactor(comorbidities []string) int {
	seen := make(map[string]bool, len(comorbidities))
	for _, c := range comorbidities {
		seen[c] = true
	}
	return len(seen) * 2
}

func surgeryFactor(t models.SurgeryType) int {
	if s, ok := surgeryTypeScores[t]; ok {
		return s
	}
	return defaultSurgeryScore
}

// Factors returns the per-factor contributions that sum to the total score.
func Factors(p *models.PatientRecord) map[string]int {
	return map[string]int{
		FactorAge:           ageFactor(p.Age),
		FactorBMI:           bmiFactor(p.BMI),
		FactorComorbidities: comorbidityFactor(p.Comorbidities),
		FactorSurgery:       surgeryFactor(p.SurgeryType),
		FactorASA:           p.ASAClass * 2,
	}
}

// DisplayFactors returns the breakdown-chart variant. Its age and BMI rules
// are coarser than the scoring ones and do not sum to the total score; both
// formulas are kept deliberately (flagged to product owners).
func DisplayFactors(p *models.PatientRecord) map[string]int {
	age := p.Age / 10
	if age > 7 {
		age = 7
	}
	bmi := 1
	if p.BMI > 30 {
		bmi = 4
	} else if p.BMI < 18.5 {
		bmi = 3
	}
	return map[string]int{
		FactorAge:           age,
		FactorBMI:           bmi,
		FactorComorbidities: comorbidityFactor(p.Comorbidities),
		FactorSurgery:       surgeryFactor(p.SurgeryType),
		FactorASA:           p.ASAClass * 2,
	}
}

// Score sums the factor contributions, capped at MaxScore. All contributions
// are non-negative so no floor is needed.
func Score(p *models.PatientRecord) int {
	total := 0
	for _, v := range Factors(p) {
		total += v
	}
	if total > MaxScore {
		total = MaxScore
	}
	return total
}

// Classify maps a score onto the four risk bands and its indicator glyph.
func Classify(score int) (models.RiskCategory, string) {
	switch {
	case score <= 8:
		return models.RiskLow, "🟢"
	case score <= 15:
		return models.RiskModerate, "🟡"
	case score <= 22:
		return models.RiskHigh, "🟠"
	default:
		return models.RiskCritical, "🔴"
	}
}

// MortalityRisk estimates the mortality percentage for a score, capped at
// 15.0 and rounded to one decimal.
func MortalityRisk(score int) float64 {
	risk := math.Min(float64(score)*0.5, 15.0)
	return math.Round(risk*10) / 10
}

var recommendationsByCategory = map[models.RiskCategory][]string{
	models.RiskCritical: {
		"Consider postponing non-emergency surgery",
		"ICU bed should be reserved post-operatively",
		"Senior surgeon consultation required",
	},
	models.RiskHigh: {
		"Enhanced monitoring required",
		"Pre-operative optimization needed",
		"Post-op HDU/ICU monitoring considered",
	},
	models.RiskModerate: {
		"Standard pre-operative assessment",
		"Regular post-operative monitoring",
		"Optimize medications pre-operatively",
	},
	models.RiskLow: {
		"Standard care protocol applicable",
	},
}

// Recommendations returns the fixed list for a category, most urgent first.
func Recommendations(category models.RiskCategory) []string {
	recs := recommendationsByCategory[category]
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}

// Assess computes the full risk assessment for one patient.
func Assess(p *models.PatientRecord) models.RiskAssessment {
	score := Score(p)
	category, indicator := Classify(score)
	return models.RiskAssessment{
		Score:            score,
		Category:         category,
		Indicator:        indicator,
		MortalityRiskPct: MortalityRisk(score),
		FactorBreakdown:  Factors(p),
		DisplayBreakdown: DisplayFactors(p),
		Recommendations:  Recommendations(category),
	}
}

// Aggregate reduces a non-empty patient list into dashboard statistics.
// Callers are responsible for the empty-store case.
func Aggregate(patients []models.PatientRecord) models.DashboardStats {
	stats := models.DashboardStats{
		TotalPatients:        len(patients),
		CategoryDistribution: make(map[models.RiskCategory]int),
		ScoresBySurgeryType:  make(map[models.SurgeryType][]int),
	}

	ageSum := 0
	for i := range patients {
		p := &patients[i]
		score := Score(p)
		category, _ := Classify(score)

		stats.CategoryDistribution[category]++
		if category == models.RiskHigh || category == models.RiskCritical {
			stats.HighRiskPatients++
		}
		if p.Emergency {
			stats.EmergencyCases++
		}
		ageSum += p.Age

		stats.ScoresBySurgeryType[p.SurgeryType] = append(stats.ScoresBySurgeryType[p.SurgeryType], score)
		stats.ScatterPoints = append(stats.ScatterPoints, models.ScatterPoint{
			PatientID:   p.ID,
			Name:        p.Name,
			Age:         p.Age,
			Score:       score,
			Category:    category,
			BMI:         p.BMI,
			SurgeryType: p.SurgeryType,
		})
	}

	if len(patients) > 0 {
		stats.AverageAge = math.Round(float64(ageSum)/float64(len(patients))*10) / 10
	}
	return stats
}
