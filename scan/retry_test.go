package scan_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yardenlev/miluim/scan"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	noDelays := []time.Duration{0, 0, 0}

	t.Run("returns on first success", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetch := func(_ context.Context, url string) (string, error) {
			attempts++
			return "<html>", nil
		}

		html, err := scan.FetchWithRetryDelays(context.Background(), "https://t.example/1", fetch, nil, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "<html>", html)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries until success", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetch := func(_ context.Context, url string) (string, error) {
			attempts++
			if attempts < 3 {
				return "", errors.New("transient")
			}
			return "<html>", nil
		}

		html, err := scan.FetchWithRetryDelays(context.Background(), "https://t.example/1", fetch, nil, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "<html>", html)
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns last error after exhausting retries", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetch := func(_ context.Context, url string) (string, error) {
			attempts++
			return "", errors.New("HTTP 500")
		}

		_, err := scan.FetchWithRetryDelays(context.Background(), "https://t.example/1", fetch, nil, noDelays)

		require.Error(t, err)
		assert.Equal(t, "HTTP 500", err.Error())
		assert.Equal(t, 4, attempts, "1 initial attempt + 3 retries")
	})

	t.Run("logs each retry attempt", func(t *testing.T) {
		t.Parallel()

		fetch := func(_ context.Context, url string) (string, error) {
			return "", errors.New("boom")
		}

		var logged int
		logger := func(format string, args ...any) {
			logged++
		}

		_, err := scan.FetchWithRetryDelays(context.Background(), "https://t.example/1", fetch, logger, noDelays)

		require.Error(t, err)
		assert.Equal(t, 3, logged, "one log line per retry")
	})

	t.Run("respects context cancellation between attempts", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())

		var attempts int
		fetch := func(_ context.Context, url string) (string, error) {
			attempts++
			cancel()
			return "", errors.New("boom")
		}

		_, err := scan.FetchWithRetryDelays(ctx, "https://t.example/1", fetch, nil, []time.Duration{time.Minute})

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, attempts, "no retry after cancellation")
	})
}

func TestLimiter(t *testing.T) {
	t.Parallel()

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := scan.NewLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background())
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("spaces out subsequent requests", func(t *testing.T) {
		t.Parallel()

		limiter := scan.NewLimiter(10) // 10 req/sec = 100ms between requests

		err := limiter.Wait(context.Background())
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background())
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := scan.NewLimiter(1) // 1 req/sec

		err := limiter.Wait(context.Background())
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err = limiter.Wait(ctx)
		assert.Error(t, err, "should fail when context times out")
	})
}
