package pkg

import "time"

// PatientStatus is the dashboard-level triage status of a patient.
type PatientStatus string

const (
	StatusCritical PatientStatus = "critical"
	StatusWarning  PatientStatus = "warning"
	StatusStable   PatientStatus = "stable"
)

// Patient is a full patient record as shown on the dashboard. The record is
// loaded into the in-memory snapshot at startup; added patients live only for
// the running session unless the Postgres write-through is enabled.
type Patient struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	DateOfBirth   string        `json:"date_of_birth"` // YYYY-MM-DD
	Gender        string        `json:"gender"`
	MRN           string        `json:"mrn"`
	Status        PatientStatus `json:"status"`
	PrimaryDoctor string        `json:"primary_doctor"`
	Conditions    []Condition   `json:"conditions"`
	Medications   []Medication  `json:"medications"`
	Vitals        VitalSigns    `json:"vitals"`
	LabResults    []LabResult   `json:"lab_results"`
	LastVisit     string        `json:"last_visit"` // YYYY-MM-DD
}

// Condition is a diagnosed condition on a patient's problem list.
type Condition struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Severity string `json:"severity"`
}

// Medication is an active prescription.
type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
}

// VitalSigns is the latest vitals snapshot for a patient.
type VitalSigns struct {
	BloodPressure    string  `json:"blood_pressure,omitempty"`
	HeartRate        int     `json:"heart_rate,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
	RespiratoryRate  int     `json:"respiratory_rate,omitempty"`
	OxygenSaturation int     `json:"oxygen_saturation,omitempty"`
}

// LabResult is a single lab panel entry.
type LabResult struct {
	Name   string `json:"name"`
	Result string `json:"result"`
	Status string `json:"status"`
}

// Note is a free-text note attached to a patient, persisted in the note store.
type Note struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// AssistRequest is the body of POST /api/assist. PatientID is empty in
// general chat mode and set on the patient page.
type AssistRequest struct {
	Question  string `json:"question"`
	PatientID string `json:"patient_id,omitempty"`
}

// AssistResponse carries the display string for the chat UI. The assist
// pipeline never surfaces a structural error, so this is always populated.
type AssistResponse struct {
	Answer string `json:"answer"`
}

// NoteRequest is the body of POST /api/patients/{id}/notes.
type NoteRequest struct {
	Text string `json:"text"`
}

// ErrorResponse is the JSON error envelope for the API.
type ErrorResponse struct {
	Error string `json:"error"`
}
