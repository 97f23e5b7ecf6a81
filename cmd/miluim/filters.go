package main

import (
	"fmt"

	"github.com/yardenlev/miluim"
)

// Run executes the filters command.
func (c *FiltersCmd) Run(deps *Dependencies) error {
	areas, err := deps.Records.DistinctAreas(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", miluim.ErrorMessage(err))
		return err
	}

	units, err := deps.Records.DistinctUnitTypes(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", miluim.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Areas:")
	for _, a := range areas {
		fmt.Fprintf(deps.Stdout, "  %s\n", a)
	}

	fmt.Fprintln(deps.Stdout, "Unit types:")
	for _, u := range units {
		fmt.Fprintf(deps.Stdout, "  %s\n", u)
	}

	return nil
}
