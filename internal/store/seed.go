package store

import "wardview/pkg"

// SeedPatients is the built-in demo ward used when no database is configured.
func SeedPatients() []pkg.Patient {
	return []pkg.Patient{
		{
			ID:            "P001",
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
				{Name: "Atorvastatin", Dosage: "20mg", Frequency: "once daily"},
			},
			Vitals: pkg.VitalSigns{
				BloodPressure:    "132/84",
				HeartRate:        76,
				Temperature:      36.8,
				RespiratoryRate:  16,
				OxygenSaturation: 97,
			},
			LabResults: []pkg.LabResult{
				{Name: "HbA1c", Result: "7.1%", Status: "elevated"},
				{Name: "LDL", Result: "118 mg/dL", Status: "borderline"},
			},
			LastVisit: "2026-07-30",
		},
		{
			ID:            "P002",
			Name:          "Sam Carter",
			DateOfBirth:   "1979-11-03",
			Gender:        "female",
			MRN:           "MRN-105776",
			Status:        pkg.StatusWarning,
			PrimaryDoctor: "Dr. Miguel Santos",
			Conditions: []pkg.Condition{
				{Name: "Hypertension", Status: "chronic", Severity: "moderate"},
			},
			Medications: []pkg.Medication{
				{Name: "Lisinopril", Dosage: "10mg", Frequency: "once daily"},
			},
			Vitals: pkg.VitalSigns{
				BloodPressure:    "148/94",
				HeartRate:        82,
				Temperature:      37.0,
				RespiratoryRate:  17,
				OxygenSaturation: 98,
			},
			LabResults: []pkg.LabResult{
				{Name: "Creatinine", Result: "1.0 mg/dL", Status: "normal"},
			},
			LastVisit: "2026-08-11",
		},
		{
			ID:            "P003",
			Name:          "Dana Whitfield",
			DateOfBirth:   "1951-02-27",
			Gender:        "female",
			MRN:           "MRN-337240",
			Status:        pkg.StatusCritical,
			PrimaryDoctor: "Dr. Priya Raman",
			Conditions: []pkg.Condition{
				{Name: "Congestive Heart Failure", Status: "active", Severity: "severe"},
				{Name: "Atrial Fibrillation", Status: "active", Severity: "moderate"},
			},
			Medications: []pkg.Medication{
				{Name: "Furosemide", Dosage: "40mg", Frequency: "twice daily"},
				{Name: "Apixaban", Dosage: "5mg", Frequency: "twice daily"},
			},
			Vitals: pkg.VitalSigns{
				BloodPressure:    "98/60",
				HeartRate:        108,
				Temperature:      36.5,
				RespiratoryRate:  22,
				OxygenSaturation: 91,
			},
			LabResults: []pkg.LabResult{
				{Name: "BNP", Result: "1250 pg/mL", Status: "critical"},
				{Name: "Potassium", Result: "3.4 mmol/L", Status: "low"},
			},
			LastVisit: "2026-08-20",
		},
		{
			ID:            "P004",
			Name:          "Ravi Subramanian",
			DateOfBirth:   "1992-06-15",
			Gender:        "male",
			MRN:           "MRN-778431",
			Status:        pkg.StatusStable,
			PrimaryDoctor: "Dr. Elaine Fox",
			Conditions: []pkg.Condition{
				{Name: "Asthma", Status: "controlled", Severity: "mild"},
			},
			Medications: []pkg.Medication{
				{Name: "Albuterol", Dosage: "90mcg", Frequency: "as needed"},
			},
			Vitals: pkg.VitalSigns{
				BloodPressure:    "118/76",
				HeartRate:        68,
				Temperature:      36.7,
				RespiratoryRate:  14,
				OxygenSaturation: 99,
			},
			LabResults: []pkg.LabResult{
				{Name: "CBC", Result: "within range", Status: "normal"},
			},
			LastVisit: "2026-06-02",
		},
		{
			ID:            "P005",
			Name:          "Greta Lindqvist",
			DateOfBirth:   "1944-09-08",
			Gender:        "female",
			MRN:           "MRN-210589",
			Status:        pkg.StatusWarning,
			PrimaryDoctor: "Dr. Miguel Santos",
			Conditions: []pkg.Condition{
				{Name: "Type 2 Diabetes", Status: "chronic", Severity: "severe"},
				{Name: "Chronic Kidney Disease", Status: "chronic", Severity: "moderate"},
			},
			Medications: []pkg.Medication{
				{Name: "Insulin glargine", Dosage: "18 units", Frequency: "nightly"},
			},
			Vitals: pkg.VitalSigns{
				BloodPressure:    "141/88",
				HeartRate:        74,
				Temperature:      36.9,
				RespiratoryRate:  18,
				OxygenSaturation: 95,
			},
			LabResults: []pkg.LabResult{
				{Name: "HbA1c", Result: "8.4%", Status: "high"},
				{Name: "eGFR", Result: "48 mL/min", Status: "low"},
			},
			LastVisit: "2026-08-05",
		},
	}
}
