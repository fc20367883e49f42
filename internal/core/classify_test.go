package core_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wardview/internal/core"
	"wardview/pkg"
)

var testNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

func testPatients() []pkg.Patient {
	return []pkg.Patient{
		{
			ID:            "P1",
			Name:          "Alex Morgan",
			DateOfBirth:   "1968-04-12",
			Gender:        "male",
			MRN:           "MRN-482913",
			Status:        pkg.StatusStable,
			PrimaryDoctor: "Dr. Priya Raman",
			Conditions: []pkg.Condition{
				{Name: "Type 2 Diabetes", Status: "chronic", Severity: "moderate"},
				{Name: "Hyperlipidemia", Status: "chronic", Severity: "mild"},
			},
			Medications: []pkg.Medication{
				{Name: "Metformin", Dosage: "500mg", Frequency: "twice daily"},
			},
			Vitals:    pkg.VitalSigns{BloodPressure: "132/84"},
			LabResults: []pkg.LabResult{
				{Name: "HbA1c", Result: "7.1%", Status: "elevated"},
			},
			LastVisit: "2026-07-30",
		},
		{
			ID:            "P2",
			Name:          "Sam Carter",
			DateOfBirth:   "1979-11-03",
			Gender:        "female",
			MRN:           "MRN-105776",
			Status:        pkg.StatusCritical,
			PrimaryDoctor: "Dr. Miguel Santos",
			Conditions: []pkg.Condition{
				{Name: "Hypertension", Status: "chronic", Severity: "moderate"},
			},
		},
		{
			ID:     "P3",
			Name:   "Dana Whitfield",
			Status: pkg.StatusWarning,
			Conditions: []pkg.Condition{
				{Name: "Gestational diabetes", Status: "resolved", Severity: "mild"},
			},
		},
	}
}

func TestClassifyAggregateDiabetes(t *testing.T) {
	patients := []pkg.Patient{
		{ID: "A", Name: "Alex", Conditions: []pkg.Condition{{Name: "Type 2 Diabetes"}}},
		{ID: "B", Name: "Sam", Conditions: []pkg.Condition{{Name: "Hypertension"}}},
	}
	c := core.Classify("how many diabetes patients", "", patients, testNow)
	require.Equal(t, core.KindAggregateAnswer, c.Kind)
	require.Equal(t, "There are 1 patients with diabetes.", c.Text)
}

func TestClassifyAggregateDiabetesMatchesConditionSubstring(t *testing.T) {
	c := core.Classify("how many DIABETES patients do we have?", "", testPatients(), testNow)
	require.Equal(t, core.KindAggregateAnswer, c.Kind)
	// P1 (Type 2 Diabetes) and P3 (Gestational diabetes) both count.
	require.Equal(t, "There are 2 patients with diabetes.", c.Text)
}

func TestClassifyAggregateStatusCounts(t *testing.T) {
	cases := map[string]string{
		"who is critical right now": "There are 1 patients in critical condition.",
		"any warning cases today":   "There are 1 patients in warning condition.",
		"list stable count":         "There are 1 patients in stable condition.",
	}
	for question, want := range cases {
		c := core.Classify(question, "", testPatients(), testNow)
		require.Equal(t, core.KindAggregateAnswer, c.Kind, question)
		require.Equal(t, want, c.Text, question)
	}
}

func TestClassifyKeywordPriority(t *testing.T) {
	c := core.Classify("how many diabetes patients are critical", "", testPatients(), testNow)
	require.Equal(t, core.KindAggregateAnswer, c.Kind)
	require.Equal(t, "There are 2 patients with diabetes.", c.Text)
}

func TestClassifyGeneralScopeRejection(t *testing.T) {
	c := core.Classify("what is the weather like", "", testPatients(), testNow)
	require.Equal(t, core.KindScopeRejection, c.Kind)
	require.Equal(t, "For specific patient questions, please go to the patient page.", c.Text)
}

func TestClassifyAugmentedQuery(t *testing.T) {
	c := core.Classify("What medications is Alex currently taking?", "P1", testPatients(), testNow)
	require.Equal(t, core.KindAugmentedQuery, c.Kind)

	require.True(t, strings.HasPrefix(c.Text, core.Preamble))
	require.Contains(t, c.Text, "Question: What medications is Alex currently taking?")
	require.Contains(t, c.Text, "MRN-482913")
	require.Contains(t, c.Text, "Dr. Priya Raman")
	require.Contains(t, c.Text, "Type 2 Diabetes")
	require.Contains(t, c.Text, "Hyperlipidemia")
	// Exactly one patient's data is embedded.
	require.NotContains(t, c.Text, "MRN-105776")
	require.NotContains(t, c.Text, "Sam Carter")
}

func TestClassifyFirstNameMatchIsCaseInsensitive(t *testing.T) {
	c := core.Classify("is ALEX due for a checkup?", "P1", testPatients(), testNow)
	require.Equal(t, core.KindAugmentedQuery, c.Kind)
}

func TestClassifyPatientScopeRejectionWhenNameMissing(t *testing.T) {
	c := core.Classify("what are the latest lab results", "P1", testPatients(), testNow)
	require.Equal(t, core.KindScopeRejection, c.Kind)
	require.Equal(t, "Please ask patient-specific questions in the patient page.", c.Text)
}

func TestClassifyUnknownPatientFallsBackToPlainQuery(t *testing.T) {
	c := core.Classify("what about alex", "does-not-exist", testPatients(), testNow)
	require.Equal(t, core.KindPlainQuery, c.Kind)
	require.Equal(t, core.BuildPrompt("what about alex"), c.Text)
	require.NotContains(t, c.Text, "Patient Information:")
}
