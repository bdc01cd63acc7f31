package store

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"surgirisk/internal/models"
	"surgirisk/internal/risk"
)

var (
	ErrNotFound   = errors.New("patient not found")
	ErrEmptyStore = errors.New("no patients registered")
)

// ValidationError reports a rejected registration field. A failed registration
// never mutates the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Sort keys accepted by Query.
const (
	SortByName        = "name"
	SortByAge         = "age"
	SortByScore       = "score"
	SortBySurgeryDate = "surgery_date"
)

type PatientStore interface {
	Register(req *models.RegisterPatientRequest) (*models.PatientRecord, error)
	All() []models.PatientRecord
	FindByID(id uint) (*models.PatientRecord, error)
	Count() int
	Query(categories []models.RiskCategory, surgeryTypes []models.SurgeryType, sortBy string) ([]models.ScoredPatient, error)
}

type patientStore struct {
	mu       sync.RWMutex
	patients []models.PatientRecord
}

// NewPatientStore creates an empty in-memory store. Ids are assigned
// sequentially per store instance; records live until the store is discarded.
func NewPatientStore() PatientStore {
	return &patientStore{}
}

func validateRegistration(req *models.RegisterPatientRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if req.Age < 1 || req.Age > 120 {
		return &ValidationError{Field: "age", Reason: "must be between 1 and 120"}
	}
	if !models.ValidGenders[req.Gender] {
		return &ValidationError{Field: "gender", Reason: fmt.Sprintf("unknown gender %q", req.Gender)}
	}
	if req.HeightCm < 50 || req.HeightCm > 250 {
		return &ValidationError{Field: "height_cm", Reason: "must be between 50 and 250"}
	}
	if req.WeightKg < 20 || req.WeightKg > 300 {
		return &ValidationError{Field: "weight_kg", Reason: "must be between 20 and 300"}
	}
	if !models.ValidSurgeryTypes[req.SurgeryType] {
		return &ValidationError{Field: "surgery_type", Reason: fmt.Sprintf("unknown surgery type %q", req.SurgeryType)}
	}
	if req.ASAClass < 1 || req.ASAClass > 5 {
		return &ValidationError{Field: "asa_class", Reason: "must be between 1 and 5"}
	}
	today := time.Now().Truncate(24 * time.Hour)
	if req.SurgeryDate.Before(today) {
		return &ValidationError{Field: "surgery_date", Reason: "must not be in the past"}
	}
	for _, c := range req.Comorbidities {
		if !models.ValidComorbidities[c] {
			return &ValidationError{Field: "comorbidities", Reason: fmt.Sprintf("unknown comorbidity %q", c)}
		}
	}
	return nil
}

// dedupComorbidities collapses duplicates, keeping first occurrence order.
func dedupComorbidities(comorbidities []string) []string {
	seen := make(map[string]bool, len(comorbidities))
	out := make([]string, 0, len(comorbidities))
	for _, c := range comorbidities {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

func computeBMI(weightKg, heightCm float64) float64 {
	bmi := weightKg / math.Pow(heightCm/100, 2)
	return math.Round(bmi*100) / 100
}

func (s *patientStore) Register(req *models.RegisterPatientRequest) (*models.PatientRecord, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	patient := models.PatientRecord{
		ID:            uint(len(s.patients) + 1),
		Name:          strings.TrimSpace(req.Name),
		Age:           req.Age,
		Gender:        req.Gender,
		HeightCm:      req.HeightCm,
		WeightKg:      req.WeightKg,
		BMI:           computeBMI(req.WeightKg, req.HeightCm),
		SurgeryDate:   req.SurgeryDate,
		SurgeryType:   req.SurgeryType,
		Surgeon:       req.Surgeon,
		ASAClass:      req.ASAClass,
		Emergency:     req.Emergency,
		Comorbidities: dedupComorbidities(req.Comorbidities),
		Allergies:     req.Allergies,
		Medications:   req.Medications,
		Notes:         req.Notes,
		RegisteredAt:  time.Now(),
	}
	s.patients = append(s.patients, patient)
	return &patient, nil
}

// All returns every record in insertion order. An empty slice is valid and
// means "no data".
func (s *patientStore) All() []models.PatientRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PatientRecord, len(s.patients))
	copy(out, s.patients)
	return out
}

func (s *patientStore) FindByID(id uint) (*models.PatientRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.patients {
		if s.patients[i].ID == id {
			patient := s.patients[i]
			return &patient, nil
		}
	}
	return nil, ErrNotFound
}

func (s *patientStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.patients)
}

// Query scores every record, keeps those whose category and surgery type are
// both in the given sets (empty sets select nothing) and sorts ascending by
// sortBy. Ties keep insertion order.
func (s *patientStore) Query(categories []models.RiskCategory, surgeryTypes []models.SurgeryType, sortBy string) ([]models.ScoredPatient, error) {
	switch sortBy {
	case SortByName, SortByAge, SortByScore, SortBySurgeryDate:
	default:
		return nil, &ValidationError{Field: "sort_by", Reason: fmt.Sprintf("unknown sort key %q", sortBy)}
	}

	patients := s.All()
	if len(patients) == 0 {
		return nil, ErrEmptyStore
	}

	categorySet := make(map[models.RiskCategory]bool, len(categories))
	for _, c := range categories {
		categorySet[c] = true
	}
	typeSet := make(map[models.SurgeryType]bool, len(surgeryTypes))
	for _, t := range surgeryTypes {
		typeSet[t] = true
	}

	results := make([]models.ScoredPatient, 0, len(patients))
	for i := range patients {
		assessment := risk.Assess(&patients[i])
		if categorySet[assessment.Category] && typeSet[patients[i].SurgeryType] {
			results = append(results, models.ScoredPatient{
				Patient:    patients[i],
				Assessment: assessment,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := &results[i], &results[j]
		switch sortBy {
		case SortByAge:
			return a.Patient.Age < b.Patient.Age
		case SortByScore:
			return a.Assessment.Score < b.Assessment.Score
		case SortBySurgeryDate:
			return a.Patient.SurgeryDate.Before(b.Patient.SurgeryDate)
		default:
			return a.Patient.Name < b.Patient.Name
		}
	})
	return results, nil
}
