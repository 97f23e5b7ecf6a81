package main

import (
	"context"
	"io"

	"github.com/yardenlev/miluim"
	"github.com/yardenlev/miluim/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DB      *sqlite.DB
	Records miluim.RecordService
	Runs    miluim.ScanRunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scan    ScanCmd    `cmd:"" help:"Scan a range of post ids and extract job records"`
	List    ListCmd    `cmd:"" help:"List stored job records"`
	Filters FiltersCmd `cmd:"" help:"Show distinct areas and unit types for filtering"`
	Runs    RunsCmd    `cmd:"" help:"List completed scans"`
	Clear   ClearCmd   `cmd:"" help:"Delete stored records and scans for a post-id range"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Start       int     `arg:"" help:"First post id"`
	End         int     `arg:"" help:"Last post id (inclusive)"`
	BaseURL     string  `short:"b" env:"MILUIM_BASE_URL" help:"Post page URL prefix; the post id is appended"`
	Concurrency int     `short:"c" default:"10" help:"Concurrent fetch limit"`
	RPS         float64 `name:"rps" default:"5" help:"Requests per second to the source host"`
	Refresh     bool    `short:"r" help:"Discard a previous scan of this range and refetch"`
	Verbose     bool    `short:"v" help:"Log fetches and writes"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Search    string `short:"s" help:"Free-text search across all fields"`
	Area      string `help:"Filter by area"`
	Unit      string `help:"Filter by unit type"`
	Ad        string `help:"Filter by ad number"`
	Immediate *bool  `help:"Filter by immediate recruitment"`
	Exempt    string `help:"Filter by exemption eligibility (yes|no)"`
	Pool      string `help:"Filter by pool affiliation (yes|no)"`
	Limit     int    `default:"50" help:"Maximum records to print"`
	Full      bool   `help:"Print all fields of each record"`
}

// FiltersCmd is the "filters" subcommand.
type FiltersCmd struct{}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct{}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Start int  `arg:"" optional:"" help:"First post id"`
	End   int  `arg:"" optional:"" help:"Last post id (inclusive)"`
	All   bool `help:"Delete all stored records and scans"`
}
