package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "embed"

	"wardview/pkg"
)

//go:embed schema.sql
var schemaSQL string

// Migrate applies the patients schema. The statements are idempotent so this
// runs unconditionally at startup when the database is enabled.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}

// LoadPatients reads the full patient table, used to hydrate the in-memory
// snapshot at process start. The database is a seed source only; per-request
// reads always hit the snapshot.
func LoadPatients(ctx context.Context, db *sql.DB) ([]pkg.Patient, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, date_of_birth, gender, mrn, status, primary_doctor,
		        conditions, medications, vitals, lab_results, last_visit
		 FROM patients
		 ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("query patients: %w", err)
	}
	defer rows.Close()

	var patients []pkg.Patient
	for rows.Next() {
		var p pkg.Patient
		var conditions, medications, vitals, labRes []byte
		if err := rows.Scan(&p.ID, &p.Name, &p.DateOfBirth, &p.Gender, &p.MRN,
			&p.Status, &p.PrimaryDoctor,
			&conditions, &medications, &vitals, &labRes, &p.LastVisit); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		if err := json.Unmarshal(conditions, &p.Conditions); err != nil {
			return nil, fmt.Errorf("decode conditions for %s: %w", p.ID, err)
		}
		if err := json.Unmarshal(medications, &p.Medications); err != nil {
			return nil, fmt.Errorf("decode medications for %s: %w", p.ID, err)
		}
		if err := json.Unmarshal(vitals, &p.Vitals); err != nil {
			return nil, fmt.Errorf("decode vitals for %s: %w", p.ID, err)
		}
		if err := json.Unmarshal(labRes, &p.LabResults); err != nil {
			return nil, fmt.Errorf("decode lab results for %s: %w", p.ID, err)
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

// InsertPatient writes one patient through to Postgres. Called best-effort
// after an in-memory Add; a failure here never blocks the API response.
func InsertPatient(ctx context.Context, db *sql.DB, p pkg.Patient) error {
	conditions, err := json.Marshal(p.Conditions)
	if err != nil {
		return err
	}
	medications, err := json.Marshal(p.Medications)
	if err != nil {
		return err
	}
	vitals, err := json.Marshal(p.Vitals)
	if err != nil {
		return err
	}
	labResults, err := json.Marshal(p.LabResults)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO patients (id, name, date_of_birth, gender, mrn, status,
		                       primary_doctor, conditions, medications, vitals,
		                       lab_results, last_visit)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (id) DO NOTHING`,
		p.ID, p.Name, p.DateOfBirth, p.Gender, p.MRN, p.Status,
		p.PrimaryDoctor, conditions, medications, vitals, labResults, p.LastVisit)
	return err
}
