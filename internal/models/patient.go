package models

import "time"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

var ValidGenders = map[Gender]bool{
	GenderMale: true, GenderFemale: true, GenderOther: true,
}

type SurgeryType string

const (
	SurgeryMinor    SurgeryType = "Minor"
	SurgeryModerate SurgeryType = "Moderate"
	SurgeryMajor    SurgeryType = "Major"
	SurgeryComplex  SurgeryType = "Complex"
)

var ValidSurgeryTypes = map[SurgeryType]bool{
	SurgeryMinor: true, SurgeryModerate: true, SurgeryMajor: true, SurgeryComplex: true,
}

// ComorbidityVocabulary is the fixed set of conditions the registration form
// offers. Anything outside it is rejected at registration.
var ComorbidityVocabulary = []string{
	"Diabetes", "Hypertension", "Heart Disease", "Kidney Disease",
	"Lung Disease", "Cancer", "Blood Disorders", "Liver Disease",
}

var ValidComorbidities = map[string]bool{
	"Diabetes": true, "Hypertension": true, "Heart Disease": true,
	"Kidney Disease": true, "Lung Disease": true, "Cancer": true,
	"Blood Disorders": true, "Liver Disease": true,
}

// PatientRecord is one registered surgical candidate. Records are immutable
// after registration; BMI is computed once at creation and stored.
type PatientRecord struct {
	ID            uint        `json:"id" example:"1"`
	Name          string      `json:"name" example:"Jane Doe"`
	Age           int         `json:"age" example:"54"`
	Gender        Gender      `json:"gender" example:"Female"`
	HeightCm      float64     `json:"height_cm" example:"170"`
	WeightKg      float64     `json:"weight_kg" example:"70"`
	BMI           float64     `json:"bmi" example:"24.22"`
	SurgeryDate   time.Time   `json:"surgery_date" example:"2026-09-15T00:00:00Z"`
	SurgeryType   SurgeryType `json:"surgery_type" example:"Major"`
	Surgeon       string      `json:"surgeon,omitempty" example:"Dr. Patel"`
	ASAClass      int         `json:"asa_class" example:"2"`
	Emergency     bool        `json:"emergency" example:"false"`
	Comorbidities []string    `json:"comorbidities" example:"Diabetes,Hypertension"`
	Allergies     string      `json:"allergies,omitempty"`
	Medications   string      `json:"medications,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	RegisteredAt  time.Time   `json:"registered_at" example:"2026-08-25T10:30:00Z"`
}

type RegisterPatientRequest struct {
	Name          string      `json:"name" binding:"required" example:"Jane Doe"`
	Age           int         `json:"age" binding:"required,min=1,max=120" example:"54"`
	Gender        Gender      `json:"gender" binding:"required" example:"Female"`
	HeightCm      float64     `json:"height_cm" binding:"required,min=50,max=250" example:"170"`
	WeightKg      float64     `json:"weight_kg" binding:"required,min=20,max=300" example:"70"`
	SurgeryDate   time.Time   `json:"surgery_date" binding:"required" example:"2026-09-15T00:00:00Z"`
	SurgeryType   SurgeryType `json:"surgery_type" binding:"required" example:"Major"`
	Surgeon       string      `json:"surgeon" example:"Dr. Patel"`
	ASAClass      int         `json:"asa_class" binding:"required,min=1,max=5" example:"2"`
	Emergency     bool        `json:"emergency" example:"false"`
	Comorbidities []string    `json:"comorbidities" example:"Diabetes,Hypertension"`
	Allergies     string      `json:"allergies"`
	Medications   string      `json:"medications"`
	Notes         string      `json:"notes"`
}
