package mock

import (
	"context"

	"github.com/yardenlev/miluim"
)

var _ miluim.ScanRunService = (*ScanRunService)(nil)

// ScanRunService is a mock implementation of miluim.ScanRunService.
type ScanRunService struct {
	CreateScanRunFn             func(ctx context.Context, run *miluim.ScanRun) error
	FindScanRunFn               func(ctx context.Context, startID, endID int, baseURL string) (*miluim.ScanRun, error)
	FindScanRunsFn              func(ctx context.Context) ([]*miluim.ScanRun, error)
	DeleteScanRunsByPostRangeFn func(ctx context.Context, startID, endID int) (int, error)
}

func (s *ScanRunService) CreateScanRun(ctx context.Context, run *miluim.ScanRun) error {
	return s.CreateScanRunFn(ctx, run)
}

func (s *ScanRunService) FindScanRun(ctx context.Context, startID, endID int, baseURL string) (*miluim.ScanRun, error) {
	return s.FindScanRunFn(ctx, startID, endID, baseURL)
}

func (s *ScanRunService) FindScanRuns(ctx context.Context) ([]*miluim.ScanRun, error) {
	return s.FindScanRunsFn(ctx)
}

func (s *ScanRunService) DeleteScanRunsByPostRange(ctx context.Context, startID, endID int) (int, error) {
	return s.DeleteScanRunsByPostRangeFn(ctx, startID, endID)
}
