package mock

import (
	"context"

	"github.com/yardenlev/miluim"
)

var _ miluim.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of miluim.RecordService.
type RecordService struct {
	CreateRecordsFn            func(ctx context.Context, records []*miluim.Record) error
	FindRecordsFn              func(ctx context.Context, filter miluim.RecordFilter) ([]*miluim.Record, error)
	DeleteRecordsByPostRangeFn func(ctx context.Context, startID, endID int) (int, error)
	DistinctAreasFn            func(ctx context.Context) ([]string, error)
	DistinctUnitTypesFn        func(ctx context.Context) ([]string, error)
}

func (s *RecordService) CreateRecords(ctx context.Context, records []*miluim.Record) error {
	return s.CreateRecordsFn(ctx, records)
}

func (s *RecordService) FindRecords(ctx context.Context, filter miluim.RecordFilter) ([]*miluim.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecordsByPostRange(ctx context.Context, startID, endID int) (int, error) {
	return s.DeleteRecordsByPostRangeFn(ctx, startID, endID)
}

func (s *RecordService) DistinctAreas(ctx context.Context) ([]string, error) {
	return s.DistinctAreasFn(ctx)
}

func (s *RecordService) DistinctUnitTypes(ctx context.Context) ([]string, error) {
	return s.DistinctUnitTypesFn(ctx)
}
