package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
)

// Dependencies holds shared configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	DataDir string
}

// ManifestPath returns the manifest file location under the data directory.
func (d *Dependencies) ManifestPath() string {
	return filepath.Join(d.DataDir, "fomc_links.csv")
}

// ArtifactsDir returns the statement artifact directory.
func (d *Dependencies) ArtifactsDir() string {
	return filepath.Join(d.DataDir, "statements")
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Harvest HarvestCmd `cmd:"" help:"Discover statement links and write the manifest"`
	Extract ExtractCmd `cmd:"" help:"Extract statement body texts for every manifest row"`

	DataDir string `help:"Data directory for the manifest and artifacts" default:"data" env:"FEDTEXT_DATA_DIR"`
	Verbose bool   `short:"v" help:"Enable debug logging"`
}

// HarvestCmd is the "harvest" subcommand.
type HarvestCmd struct {
	Start int  `help:"First index year to harvest" default:"2000"`
	End   int  `help:"Last index year to harvest" default:"2024"`
	Feed  bool `help:"Consult the press release feed when index pages fail" default:"true" negatable:""`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Engine   string  `help:"Extraction engine" enum:"goquery,readability" default:"goquery"`
	RPS      float64 `help:"Request rate ceiling against the origin" default:"2"`
	ReportDB string  `help:"SQLite file for run diagnostics (empty disables reporting)"`
}
