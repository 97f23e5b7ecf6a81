package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yardenlev/miluim"
	"github.com/yardenlev/miluim/mock"
	miluimslog "github.com/yardenlev/miluim/slog"
)

func TestLoggingRecordService(t *testing.T) {
	t.Parallel()

	t.Run("logs record creation with count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordService{
			CreateRecordsFn: func(ctx context.Context, records []*miluim.Record) error {
				return nil
			},
		}

		svc := miluimslog.NewLoggingRecordService(inner, logger)
		err := svc.CreateRecords(context.Background(), []*miluim.Record{{}, {}})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "create records")
		assert.Contains(t, output, "count=2")
	})

	t.Run("logs search term on find", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordService{
			FindRecordsFn: func(ctx context.Context, filter miluim.RecordFilter) ([]*miluim.Record, error) {
				return []*miluim.Record{{}}, nil
			},
		}

		svc := miluimslog.NewLoggingRecordService(inner, logger)
		records, err := svc.FindRecords(context.Background(), miluim.RecordFilter{Search: "driver"})

		require.NoError(t, err)
		assert.Len(t, records, 1)
		output := buf.String()
		assert.Contains(t, output, "find records")
		assert.Contains(t, output, "search=driver")
		assert.Contains(t, output, "count=1")
	})

	t.Run("logs delete range with affected count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordService{
			DeleteRecordsByPostRangeFn: func(ctx context.Context, startID, endID int) (int, error) {
				return 7, nil
			},
		}

		svc := miluimslog.NewLoggingRecordService(inner, logger)
		n, err := svc.DeleteRecordsByPostRange(context.Background(), 1, 50)

		require.NoError(t, err)
		assert.Equal(t, 7, n)
		output := buf.String()
		assert.Contains(t, output, "delete records")
		assert.Contains(t, output, "start=1")
		assert.Contains(t, output, "end=50")
		assert.Contains(t, output, "count=7")
	})
}
