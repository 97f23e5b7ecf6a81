package main

import (
	"fmt"
	"log/slog"

	"github.com/yardenlev/miluim"
	"github.com/yardenlev/miluim/goquery"
	miluimhttp "github.com/yardenlev/miluim/http"
	"github.com/yardenlev/miluim/scan"
	miluimslog "github.com/yardenlev/miluim/slog"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	if c.BaseURL == "" {
		fmt.Fprintln(deps.Stderr, "Hint: Set MILUIM_BASE_URL or pass --base-url")
		return miluim.Errorf(miluim.EINVALID, "base URL required")
	}

	// A completed scan of the same range acts as a cache; --refresh
	// invalidates it.
	if run, err := deps.Runs.FindScanRun(deps.Ctx, c.Start, c.End, c.BaseURL); err == nil && !c.Refresh {
		fmt.Fprintf(deps.Stdout, "Range %d-%d already scanned at %s (%d ads, %d records). Use --refresh to refetch.\n",
			c.Start, c.End, run.FetchedAt.Format("2006-01-02 15:04"), run.Posts, run.Records)
		return nil
	} else if err != nil && miluim.ErrorCode(err) != miluim.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: %s\n", miluim.ErrorMessage(err))
		return err
	}

	if c.Refresh {
		if _, err := deps.Records.DeleteRecordsByPostRange(deps.Ctx, c.Start, c.End); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", miluim.ErrorMessage(err))
			return err
		}
		if _, err := deps.Runs.DeleteScanRunsByPostRange(deps.Ctx, c.Start, c.End); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", miluim.ErrorMessage(err))
			return err
		}
	}

	var fetcher miluim.Fetcher = miluimhttp.NewFetcher()
	defer fetcher.Close()

	records := deps.Records
	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))
		fetcher = miluimslog.NewLoggingFetcher(fetcher, logger)
		records = miluimslog.NewLoggingRecordService(records, logger)
	}

	scanner := &scan.Scanner{
		Fetcher:     fetcher,
		Extractor:   goquery.NewDescriptionExtractor(),
		Records:     records,
		Runs:        deps.Runs,
		RateLimiter: scan.NewLimiter(c.RPS),
		Concurrency: c.Concurrency,
	}

	progress := func(event scan.ProgressEvent) {
		switch event.Type {
		case scan.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scanning %d posts...\n", event.Total)
		case scan.ProgressScanned:
			if event.Records > 0 {
				fmt.Fprintf(deps.Stdout, "  [%d/%d] post %d: %d records\n",
					event.Completed, event.Total, event.PostID, event.Records)
			}
		case scan.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] post %d: skipped (%v)\n",
				event.Completed, event.Total, event.PostID, event.Error)
		}
	}

	result, err := scanner.ScanRange(deps.Ctx, c.BaseURL, c.Start, c.End, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", miluim.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Done: %d posts, %d ads, %d records, %d skipped\n",
		result.Posts, result.Ads, result.Records, result.Skipped)
	return nil
}
