package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/yardenlev/miluim"
)

// Compile-time interface verification.
var _ miluim.RecordService = (*RecordService)(nil)

// RecordService implements miluim.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// recordColumns is the canonical column list shared by every record query.
const recordColumns = `id, post_id, ad_number, role, role_position, unit_type, area,
	qualifications, unit_info, service_terms, service_period, start_month, end_month,
	immediate, recruitment_type, exemption, pool, link, search_text, content_hash, created_at`

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateRecords persists a batch of records in one transaction, so a
// post's fan-out is stored all-or-nothing.
func (s *RecordService) CreateRecords(ctx context.Context, records []*miluim.Record) error {
	for _, record := range records {
		if err := record.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, record := range records {
		record.ID = uuid.New().String()
		record.CreatedAt = now
		searchText := miluim.Normalize(record.SearchText())
		record.ContentHash = hashContent(searchText)

		_, err := tx.ExecContext(ctx, `
			INSERT INTO records (`+recordColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, record.ID, record.PostID, record.AdNumber, record.Role, record.RolePosition,
			record.UnitType, record.Area, record.Qualifications, record.UnitInfo,
			record.ServiceTerms, record.ServicePeriod, record.StartMonth, record.EndMonth,
			record.Immediate, record.RecruitmentType, string(record.Exemption),
			string(record.Pool), record.Link, searchText, record.ContentHash,
			record.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRecords retrieves records matching the filter.
func (s *RecordService) FindRecords(ctx context.Context, filter miluim.RecordFilter) ([]*miluim.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.AdNumber != nil {
		query.WriteString(" AND ad_number = ?")
		args = append(args, *filter.AdNumber)
	}
	if filter.PostID != nil {
		query.WriteString(" AND post_id = ?")
		args = append(args, *filter.PostID)
	}
	if filter.Area != nil {
		query.WriteString(" AND area = ?")
		args = append(args, *filter.Area)
	}
	if filter.UnitType != nil {
		query.WriteString(" AND unit_type = ?")
		args = append(args, *filter.UnitType)
	}
	if filter.Immediate != nil {
		query.WriteString(" AND immediate = ?")
		args = append(args, *filter.Immediate)
	}
	if filter.Exemption != nil {
		query.WriteString(" AND exemption = ?")
		args = append(args, string(*filter.Exemption))
	}
	if filter.Pool != nil {
		query.WriteString(" AND pool = ?")
		args = append(args, string(*filter.Pool))
	}
	if filter.Search != "" {
		// Queries are normalized the same way search_text is stored, so
		// the comparison is robust to punctuation and niqqud.
		query.WriteString(" AND search_text LIKE ?")
		args = append(args, "%"+miluim.Normalize(filter.Search)+"%")
	}

	query.WriteString(" ORDER BY post_id ASC, role_position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*miluim.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// DeleteRecordsByPostRange removes all records whose post ID falls in
// [startID, endID].
func (s *RecordService) DeleteRecordsByPostRange(ctx context.Context, startID, endID int) (int, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM records WHERE post_id BETWEEN ? AND ?
	`, startID, endID)
	if err != nil {
		return 0, err
	}

	n, err := result.RowsAffected()
	return int(n), err
}

// DistinctAreas returns the distinct non-empty area values.
func (s *RecordService) DistinctAreas(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "area")
}

// DistinctUnitTypes returns the distinct non-empty unit types.
func (s *RecordService) DistinctUnitTypes(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "unit_type")
}

// distinct returns the sorted distinct non-empty values of a column.
// The column name is always one of the fixed identifiers above, never
// user input.
func (s *RecordService) distinct(ctx context.Context, column string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT "+column+" FROM records WHERE "+column+" != '' ORDER BY "+column+" ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, rows.Err()
}

// scanRecord scans one row into a Record.
func scanRecord(rows *sql.Rows) (*miluim.Record, error) {
	var record miluim.Record
	var exemption, pool, searchText, createdAt string

	if err := rows.Scan(&record.ID, &record.PostID, &record.AdNumber, &record.Role,
		&record.RolePosition, &record.UnitType, &record.Area, &record.Qualifications,
		&record.UnitInfo, &record.ServiceTerms, &record.ServicePeriod, &record.StartMonth,
		&record.EndMonth, &record.Immediate, &record.RecruitmentType, &exemption,
		&pool, &record.Link, &searchText, &record.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	record.Exemption = miluim.TriState(exemption)
	record.Pool = miluim.TriState(pool)

	var err error
	record.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &record, nil
}
