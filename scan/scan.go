// Package scan orchestrates scanning a range of post ids. It
// coordinates fetching each post page, extracting the post body from
// the page metadata, running the job-ad extractor, and persisting the
// resulting records.
package scan

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/yardenlev/miluim"
	"github.com/yardenlev/miluim/extract"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of posts fetched in parallel when
// Scanner.Concurrency is unset.
const DefaultConcurrency = 10

// Scanner orchestrates the scan of a post-id range.
type Scanner struct {
	Fetcher     miluim.Fetcher
	Extractor   miluim.DescriptionExtractor
	Records     miluim.RecordService
	Runs        miluim.ScanRunService
	RateLimiter miluim.RateLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a scan.
type Result struct {
	Posts   int // ids processed
	Ads     int // posts that yielded records
	Skipped int // pages that failed to fetch or carried no post body
	Records int // records saved
}

// ProgressEvent reports progress during a scan.
type ProgressEvent struct {
	Type      ProgressType
	PostID    int
	Completed int
	Total     int
	Records   int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressScanned
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting scan progress.
type ProgressFunc func(event ProgressEvent)

// postResult holds the outcome of processing a single post id.
type postResult struct {
	position int
	postID   int
	records  []*miluim.Record
	err      error // fetch or extraction failure; skips the post
}

// ScanRange fetches and extracts every post in [startID, endID] and
// persists the resulting records. Posts that fail to fetch or carry no
// body are skipped without error; only an invalid range or a storage
// failure aborts the scan. On success a ScanRun is recorded so the
// range is not refetched until explicitly invalidated.
func (s *Scanner) ScanRange(ctx context.Context, baseURL string, startID, endID int, progress ProgressFunc) (*Result, error) {
	if startID <= 0 || endID < startID {
		return nil, miluim.Errorf(miluim.EINVALID, "invalid post range %d-%d", startID, endID)
	}

	total := endID - startID + 1

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan postResult, total)

	var completed atomic.Int64

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i := 0; i < total; i++ {
			i := i
			g.Go(func() error {
				result := s.processPost(gctx, i, startID+i, baseURL)
				resultCh <- result
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in post-id order so records are saved
	// deterministically.
	results := make([]postResult, total)
	var skipped int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.err != nil {
			skipped++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressSkipped,
					PostID:    result.postID,
					Completed: int(completed.Load()),
					Total:     total,
					Error:     result.err,
				})
			}
			continue
		}

		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressScanned,
				PostID:    result.postID,
				Completed: int(completed.Load()),
				Total:     total,
				Records:   len(result.records),
			})
		}
	}

	var ads, saved int
	for _, result := range results {
		if result.err != nil || len(result.records) == 0 {
			continue
		}
		if err := s.Records.CreateRecords(ctx, result.records); err != nil {
			return nil, err
		}
		ads++
		saved += len(result.records)
	}

	if s.Runs != nil {
		run := &miluim.ScanRun{
			StartID: startID,
			EndID:   endID,
			BaseURL: baseURL,
			Posts:   ads,
			Records: saved,
		}
		if err := s.Runs.CreateScanRun(ctx, run); err != nil {
			return nil, err
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &Result{
		Posts:   total,
		Ads:     ads,
		Skipped: skipped,
		Records: saved,
	}, nil
}

// processPost fetches one post page and extracts its records. Every
// failure is returned in the result rather than aborting the scan.
func (s *Scanner) processPost(ctx context.Context, position, postID int, baseURL string) postResult {
	result := postResult{
		position: position,
		postID:   postID,
	}

	url := baseURL + strconv.Itoa(postID)

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx); err != nil {
			result.err = err
			return result
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, url, s.Fetcher.Fetch, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	body, err := s.Extractor.Extract(html)
	if err != nil {
		result.err = err
		return result
	}

	// The extractor itself rejects posts without an ad number, so an
	// empty slice here is a non-ad post, not an error.
	result.records = extract.ParsePost(miluim.Post{ID: postID, Body: body}, baseURL)
	return result
}
