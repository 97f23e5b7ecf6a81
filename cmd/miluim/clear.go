package main

import (
	"fmt"
	"math"

	"github.com/yardenlev/miluim"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	start, end := c.Start, c.End
	if c.All {
		start, end = 1, math.MaxInt
	} else if start <= 0 || end < start {
		return miluim.Errorf(miluim.EINVALID, "post range required (or --all)")
	}

	records, err := deps.Records.DeleteRecordsByPostRange(deps.Ctx, start, end)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", miluim.ErrorMessage(err))
		return err
	}

	runs, err := deps.Runs.DeleteScanRunsByPostRange(deps.Ctx, start, end)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", miluim.ErrorMessage(err))
		return err
	}

	if c.All {
		fmt.Fprintf(deps.Stdout, "Deleted %d records and %d scans\n", records, runs)
	} else {
		fmt.Fprintf(deps.Stdout, "Deleted %d records and %d scans for range %d-%d\n",
			records, runs, start, end)
	}
	return nil
}
