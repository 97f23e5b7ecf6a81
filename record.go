package miluim

import (
	"context"
	"time"
)

// TriState is a flag value where the absence of a signal must be
// distinguished from an explicit negative signal.
type TriState string

// TriState values.
const (
	TriUnknown TriState = ""
	TriYes     TriState = "yes"
	TriNo      TriState = "no"
)

// Record represents one job opportunity extracted from a post.
// A post advertising N roles yields N records that share every field
// except Role and RolePosition. Records are immutable once created.
//
// The field set is a stable identifier surface used for filtering and
// search; renaming a field is a breaking change.
type Record struct {
	ID     string `json:"id"`
	PostID int    `json:"postId"`

	AdNumber        string   `json:"adNumber"`
	Role            string   `json:"role"`
	RolePosition    int      `json:"rolePosition"`
	UnitType        string   `json:"unitType"`
	Area            string   `json:"area"`
	Qualifications  string   `json:"qualifications"`
	UnitInfo        string   `json:"unitInfo"`
	ServiceTerms    string   `json:"serviceTerms"`
	ServicePeriod   string   `json:"servicePeriod"`
	StartMonth      string   `json:"startMonth"`
	EndMonth        string   `json:"endMonth"`
	Immediate       bool     `json:"immediate"`
	RecruitmentType string   `json:"recruitmentType"`
	Exemption       TriState `json:"exemption"`
	Pool            TriState `json:"pool"`
	Link            string   `json:"link"`

	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.PostID <= 0 {
		return Errorf(EINVALID, "record post ID required")
	}
	if r.AdNumber == "" {
		return Errorf(EINVALID, "record ad number required")
	}
	if r.Role == "" {
		return Errorf(EINVALID, "record role required")
	}
	return nil
}

// SearchText returns the record's fields joined into a single blob for
// free-text search. Callers normalize it before storage or comparison.
func (r *Record) SearchText() string {
	return r.AdNumber + " " + r.Role + " " + r.UnitType + " " + r.Area + " " +
		r.Qualifications + " " + r.UnitInfo + " " + r.ServiceTerms + " " +
		r.ServicePeriod + " " + r.RecruitmentType
}

// RecordService represents a service for managing job records.
type RecordService interface {
	// CreateRecords persists a batch of records, normally all records
	// fanned out from one post.
	CreateRecords(ctx context.Context, records []*Record) error

	// FindRecords retrieves records matching the filter, ordered by
	// post ID and then by role position within the post.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecordsByPostRange removes all records whose post ID falls
	// in [startID, endID]. Returns the number of records removed.
	DeleteRecordsByPostRange(ctx context.Context, startID, endID int) (int, error)

	// DistinctAreas returns the distinct non-empty area values.
	DistinctAreas(ctx context.Context) ([]string, error)

	// DistinctUnitTypes returns the distinct non-empty unit types.
	DistinctUnitTypes(ctx context.Context) ([]string, error)
}

// RecordFilter represents a filter for FindRecords.
// Pointer fields are exact-match constraints; Search is a normalized
// substring match across all textual fields.
type RecordFilter struct {
	AdNumber  *string   `json:"adNumber"`
	PostID    *int      `json:"postId"`
	Area      *string   `json:"area"`
	UnitType  *string   `json:"unitType"`
	Immediate *bool     `json:"immediate"`
	Exemption *TriState `json:"exemption"`
	Pool      *TriState `json:"pool"`

	Search string `json:"search"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ScanRun records one completed scan of a post-id range. It acts as a
// cache key: scanning an already-recorded range is skipped unless the
// caller explicitly invalidates it.
type ScanRun struct {
	ID        string    `json:"id"`
	StartID   int       `json:"startId"`
	EndID     int       `json:"endId"`
	BaseURL   string    `json:"baseUrl"`
	Posts     int       `json:"posts"`
	Records   int       `json:"records"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Validate returns an error if the scan run contains invalid fields.
func (r *ScanRun) Validate() error {
	if r.StartID <= 0 || r.EndID < r.StartID {
		return Errorf(EINVALID, "scan run range invalid")
	}
	if r.BaseURL == "" {
		return Errorf(EINVALID, "scan run base URL required")
	}
	return nil
}

// ScanRunService represents a service for managing scan runs.
type ScanRunService interface {
	// CreateScanRun persists a completed scan run.
	CreateScanRun(ctx context.Context, run *ScanRun) error

	// FindScanRun retrieves the most recent run covering exactly
	// [startID, endID] for baseURL. Returns ENOTFOUND if none exists.
	FindScanRun(ctx context.Context, startID, endID int, baseURL string) (*ScanRun, error)

	// FindScanRuns retrieves all runs, most recent first.
	FindScanRuns(ctx context.Context) ([]*ScanRun, error)

	// DeleteScanRunsByPostRange removes runs whose range overlaps
	// [startID, endID]. Returns the number of runs removed.
	DeleteScanRunsByPostRange(ctx context.Context, startID, endID int) (int, error)
}
