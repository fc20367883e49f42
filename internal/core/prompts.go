package core

// prompts.go holds the fixed user-facing strings and the prompt assembly for
// the assist pipeline. Keeping them in one file makes the wording easy to
// tweak without touching the routing logic.

import (
	"fmt"
	"strings"
	"time"

	"wardview/pkg"
)

const (
	// Preamble is the fixed instruction block sent ahead of every question
	// that reaches the remote model.
	Preamble = "You are a clinical assistant for a hospital dashboard. " +
		"Answer concisely and only from the information provided. " +
		"Do not give a diagnosis or treatment advice; refer clinical decisions to the care team."

	// GeneralScopeMessage is returned in general chat mode when no aggregate
	// keyword matches.
	GeneralScopeMessage = "For specific patient questions, please go to the patient page."

	// PatientScopeMessage is returned on the patient page when the question
	// does not mention the patient by first name.
	PatientScopeMessage = "Please ask patient-specific questions in the patient page."

	// NoResponseMessage is shown when the model replied with no answer text.
	NoResponseMessage = "No response from AI."

	// CompletionErrorMessage is shown for any completion failure. The real
	// error detail goes to the log, never to the user.
	CompletionErrorMessage = "Error: Could not process the request."
)

// BuildPrompt assembles the instruction-only prompt.
func BuildPrompt(question string) string {
	return Preamble + "\n\nQuestion: " + question
}

// BuildPatientPrompt assembles the prompt with the patient context block
// beneath the question.
func BuildPatientPrompt(question string, p pkg.Patient, now time.Time) string {
	return BuildPrompt(question) + "\n\n" + PatientContext(p, now)
}

// PatientContext serializes one patient's record into the context block
// embedded in augmented prompts.
func PatientContext(p pkg.Patient, now time.Time) string {
	conditions := make([]string, 0, len(p.Conditions))
	for _, c := range p.Conditions {
		conditions = append(conditions, fmt.Sprintf("%s (%s, %s)", c.Name, c.Status, c.Severity))
	}
	medications := make([]string, 0, len(p.Medications))
	for _, m := range p.Medications {
		medications = append(medications, fmt.Sprintf("%s (%s, %s)", m.Name, m.Dosage, m.Frequency))
	}
	labs := make([]string, 0, len(p.LabResults))
	for _, l := range p.LabResults {
		labs = append(labs, fmt.Sprintf("%s: %s (Status: %s)", l.Name, l.Result, l.Status))
	}

	bloodPressure := p.Vitals.BloodPressure
	if bloodPressure == "" {
		bloodPressure = "Not available"
	}

	var b strings.Builder
	b.WriteString("Patient Information:\n")
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Age: %s\n", ageString(p.DateOfBirth, now))
	fmt.Fprintf(&b, "Gender: %s\n", p.Gender)
	fmt.Fprintf(&b, "MRN: %s\n", p.MRN)
	fmt.Fprintf(&b, "Primary Doctor: %s\n", p.PrimaryDoctor)
	fmt.Fprintf(&b, "Conditions: %s\n", strings.Join(conditions, ", "))
	fmt.Fprintf(&b, "Medications: %s\n", strings.Join(medications, ", "))
	fmt.Fprintf(&b, "Blood Pressure: %s\n", bloodPressure)
	fmt.Fprintf(&b, "Last Visit: %s\n", p.LastVisit)
	fmt.Fprintf(&b, "Lab Results:\n%s", strings.Join(labs, "\n"))
	return b.String()
}

// ageString formats the patient's age in whole years, adjusted for whether
// the birthday has occurred this year. Unparseable dates render as
// "Not available" rather than a bogus number.
func ageString(dateOfBirth string, now time.Time) string {
	dob, err := time.Parse("2006-01-02", dateOfBirth)
	if err != nil {
		return "Not available"
	}
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return fmt.Sprintf("%d", years)
}
