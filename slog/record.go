package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/yardenlev/miluim"
)

// Ensure LoggingRecordService implements miluim.RecordService.
var _ miluim.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with debug logging for
// writes and searches.
type LoggingRecordService struct {
	next   miluim.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next miluim.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// CreateRecords delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) CreateRecords(ctx context.Context, records []*miluim.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRecords(ctx, records)
}

// FindRecords delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter miluim.RecordFilter) (records []*miluim.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find records",
			"search", filter.Search,
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecords(ctx, filter)
}

// DeleteRecordsByPostRange delegates to the wrapped service and logs
// the operation.
func (s *LoggingRecordService) DeleteRecordsByPostRange(ctx context.Context, startID, endID int) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete records",
			"start", startID,
			"end", endID,
			"count", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRecordsByPostRange(ctx, startID, endID)
}

// DistinctAreas delegates to the wrapped service.
func (s *LoggingRecordService) DistinctAreas(ctx context.Context) ([]string, error) {
	return s.next.DistinctAreas(ctx)
}

// DistinctUnitTypes delegates to the wrapped service.
func (s *LoggingRecordService) DistinctUnitTypes(ctx context.Context) ([]string, error) {
	return s.next.DistinctUnitTypes(ctx)
}
