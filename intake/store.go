package intake

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	mv "github.com/gomtb/validator"
	"github.com/gomtb/validator/mtb"
)

// ErrNotFound is returned when no row exists for a patient.
var ErrNotFound = errors.New("intake: not found")

// Store persists submitted MTB files and their data-quality reports in
// SQLite. Rows are keyed by patient id; a resubmission replaces the
// previous state.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS mtb_files (
	patient_id   TEXT PRIMARY KEY,
	submitted_at TEXT NOT NULL,
	content      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS data_quality_reports (
	id         TEXT PRIMARY KEY,
	patient_id TEXT NOT NULL UNIQUE,
	created_at TEXT NOT NULL,
	content    TEXT NOT NULL
);
`

// OpenStore opens (and if needed initializes) the SQLite database at
// path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveFile stores or replaces the submitted file of a patient.
func (s *Store) SaveFile(ctx context.Context, file *mtb.File) error {
	content, err := json.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshal mtb file: %w", err)
	}

	const q = `INSERT INTO mtb_files (patient_id, submitted_at, content) VALUES (?, ?, ?)
ON CONFLICT(patient_id) DO UPDATE SET submitted_at = excluded.submitted_at, content = excluded.content`
	_, err = s.db.ExecContext(ctx, q, file.Patient.ID, time.Now().UTC().Format(time.RFC3339), string(content))
	if err != nil {
		return fmt.Errorf("save mtb file: %w", err)
	}
	return nil
}

// SaveReport stores or replaces the data-quality report of a patient.
func (s *Store) SaveReport(ctx context.Context, report *mv.DataQualityReport) error {
	content, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	const q = `INSERT INTO data_quality_reports (id, patient_id, created_at, content) VALUES (?, ?, ?, ?)
ON CONFLICT(patient_id) DO UPDATE SET id = excluded.id, created_at = excluded.created_at, content = excluded.content`
	_, err = s.db.ExecContext(ctx, q, uuid.NewString(), report.PatientID, time.Now().UTC().Format(time.RFC3339), string(content))
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

// Report fetches the stored data-quality report of a patient.
func (s *Store) Report(ctx context.Context, patientID string) (*mv.DataQualityReport, error) {
	const q = `SELECT content FROM data_quality_reports WHERE patient_id = ?`

	var content string
	err := s.db.QueryRowContext(ctx, q, patientID).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load report: %w", err)
	}

	report := &mv.DataQualityReport{}
	if err := json.Unmarshal([]byte(content), report); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return report, nil
}

// DeleteReport removes the stored report of a patient, if any.
func (s *Store) DeleteReport(ctx context.Context, patientID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM data_quality_reports WHERE patient_id = ?`, patientID)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	return nil
}

// Delete removes every stored row of a patient.
func (s *Store) Delete(ctx context.Context, patientID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM mtb_files WHERE patient_id = ?`, patientID); err != nil {
		return fmt.Errorf("delete mtb file: %w", err)
	}
	return s.DeleteReport(ctx, patientID)
}
