package main

import (
	"fmt"

	"github.com/yardenlev/miluim"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := miluim.RecordFilter{
		Search: c.Search,
		Limit:  c.Limit,
	}
	if c.Area != "" {
		filter.Area = &c.Area
	}
	if c.Unit != "" {
		filter.UnitType = &c.Unit
	}
	if c.Ad != "" {
		filter.AdNumber = &c.Ad
	}
	filter.Immediate = c.Immediate
	if tri, err := parseTriState(c.Exempt, "--exempt"); err != nil {
		return err
	} else if tri != nil {
		filter.Exemption = tri
	}
	if tri, err := parseTriState(c.Pool, "--pool"); err != nil {
		return err
	} else if tri != nil {
		filter.Pool = tri
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", miluim.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'miluim scan' to collect some.")
		return nil
	}

	for _, r := range records {
		if c.Full {
			printFull(deps, r)
			continue
		}
		fmt.Fprintf(deps.Stdout, "#%s  %s  %s  %s  %s\n",
			r.AdNumber, r.Role, r.UnitType, r.Area, r.Link)
	}
	fmt.Fprintf(deps.Stdout, "%d records\n", len(records))

	return nil
}

func printFull(deps *Dependencies, r *miluim.Record) {
	fmt.Fprintf(deps.Stdout, "#%s  %s\n", r.AdNumber, r.Role)
	for _, f := range []struct{ label, value string }{
		{"unit type", r.UnitType},
		{"area", r.Area},
		{"qualifications", r.Qualifications},
		{"unit info", r.UnitInfo},
		{"service terms", r.ServiceTerms},
		{"service period", r.ServicePeriod},
		{"recruitment", r.RecruitmentType},
	} {
		if f.value != "" {
			fmt.Fprintf(deps.Stdout, "  %-14s  %s\n", f.label, f.value)
		}
	}
	if r.Immediate {
		fmt.Fprintln(deps.Stdout, "  immediate recruitment")
	}
	if r.Exemption != miluim.TriUnknown {
		fmt.Fprintf(deps.Stdout, "  %-14s  %s\n", "exemption", r.Exemption)
	}
	if r.Pool != miluim.TriUnknown {
		fmt.Fprintf(deps.Stdout, "  %-14s  %s\n", "pool", r.Pool)
	}
	fmt.Fprintf(deps.Stdout, "  %-14s  %s\n", "link", r.Link)
	fmt.Fprintln(deps.Stdout)
}

// parseTriState converts a yes/no flag value into a TriState filter.
// An empty value means the flag was not set.
func parseTriState(value, flag string) (*miluim.TriState, error) {
	switch value {
	case "":
		return nil, nil
	case "yes":
		tri := miluim.TriYes
		return &tri, nil
	case "no":
		tri := miluim.TriNo
		return &tri, nil
	default:
		return nil, miluim.Errorf(miluim.EINVALID, "%s must be yes or no, got %q", flag, value)
	}
}
