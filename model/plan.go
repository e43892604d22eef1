package model

import "time"

// Medicine is one prescribed medicine inside a generated plan.
// @Description Prescribed medicine with its intake schedule
type Medicine struct {
	Name      string `json:"name" example:"Paracetamol 500mg"`
	Dosage    string `json:"dosage" example:"1 tablet"`
	Frequency string `json:"frequency" example:"Twice daily"`
	Duration  string `json:"duration" example:"5 days"`
	// Schedule holds 24h clock times like "08:00", "20:00".
	Schedule []string `json:"schedule" example:"08:00,20:00"`
}

// GeneratedPlan is the structured document returned by the
// content-generation service.
type GeneratedPlan struct {
	Overview     string     `json:"overview"`
	Diet         []string   `json:"diet"`
	Medicines    []Medicine `json:"medicines"`
	Monitoring   []string   `json:"monitoring"`
	DurationDays int        `json:"durationDays"`
}

// TreatmentPlan couples the patient form input with the generated plan.
// ID is assigned at generation time and is the primary key for history
// update-vs-insert decisions.
// @Description Treatment plan with patient details and AI-generated content
type TreatmentPlan struct {
	ID            string        `json:"id" example:"6f1c0e2a"`
	PatientName   string        `json:"patientName" example:"John Doe"`
	Age           int           `json:"age" example:"42"`
	Gender        string        `json:"gender" example:"male"`
	History       string        `json:"history" example:"Hypertension"`
	Symptoms      string        `json:"symptoms" example:"Fever, headache"`
	Medications   string        `json:"medications" example:"Amlodipine"`
	GeneratedPlan GeneratedPlan `json:"generatedPlan"`
	CreatedAt     time.Time     `json:"createdAt"`
}
