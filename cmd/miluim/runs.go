package main

import (
	"fmt"

	"github.com/yardenlev/miluim"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindScanRuns(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", miluim.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No scans recorded. Use 'miluim scan' to run one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %d-%d  %d ads  %d records\n",
			r.FetchedAt.Format("2006-01-02 15:04"), r.StartID, r.EndID, r.Posts, r.Records)
	}

	return nil
}
