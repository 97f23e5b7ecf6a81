package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/yardenlev/miluim"
)

// Compile-time interface verification.
var _ miluim.ScanRunService = (*ScanRunService)(nil)

// ScanRunService implements miluim.ScanRunService using SQLite.
type ScanRunService struct {
	db *DB
}

// NewScanRunService creates a new ScanRunService.
func NewScanRunService(db *DB) *ScanRunService {
	return &ScanRunService{db: db}
}

// CreateScanRun persists a completed scan run.
func (s *ScanRunService) CreateScanRun(ctx context.Context, run *miluim.ScanRun) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.FetchedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scan_runs (id, start_id, end_id, base_url, posts, records, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartID, run.EndID, run.BaseURL, run.Posts, run.Records,
		run.FetchedAt.Format(time.RFC3339))

	return err
}

// FindScanRun retrieves the most recent run covering exactly
// [startID, endID] for baseURL.
func (s *ScanRunService) FindScanRun(ctx context.Context, startID, endID int, baseURL string) (*miluim.ScanRun, error) {
	var run miluim.ScanRun
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, start_id, end_id, base_url, posts, records, fetched_at
		FROM scan_runs
		WHERE start_id = ? AND end_id = ? AND base_url = ?
		ORDER BY fetched_at DESC
		LIMIT 1
	`, startID, endID, baseURL).Scan(&run.ID, &run.StartID, &run.EndID, &run.BaseURL,
		&run.Posts, &run.Records, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, miluim.Errorf(miluim.ENOTFOUND, "scan run not found")
	}
	if err != nil {
		return nil, err
	}

	run.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &run, nil
}

// FindScanRuns retrieves all runs, most recent first.
func (s *ScanRunService) FindScanRuns(ctx context.Context) ([]*miluim.ScanRun, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, start_id, end_id, base_url, posts, records, fetched_at
		FROM scan_runs
		ORDER BY fetched_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*miluim.ScanRun
	for rows.Next() {
		var run miluim.ScanRun
		var fetchedAt string

		if err := rows.Scan(&run.ID, &run.StartID, &run.EndID, &run.BaseURL,
			&run.Posts, &run.Records, &fetchedAt); err != nil {
			return nil, err
		}

		run.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// DeleteScanRunsByPostRange removes runs whose range overlaps
// [startID, endID].
func (s *ScanRunService) DeleteScanRunsByPostRange(ctx context.Context, startID, endID int) (int, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM scan_runs WHERE start_id <= ? AND end_id >= ?
	`, endID, startID)
	if err != nil {
		return 0, err
	}

	n, err := result.RowsAffected()
	return int(n), err
}
