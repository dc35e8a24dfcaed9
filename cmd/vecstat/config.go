package main

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"
)

const (
	formatLogfmt = "logfmt"
	formatProm   = "prom"
)

// Config describes the workload.
type Config struct {
	Elements    int
	Reserve     int
	InsertEvery int
	EraseEvery  int
	Format      string
	Verbose     bool
}

// RegisterFlags registers the workload flags on app.
func (cfg *Config) RegisterFlags(app *kingpin.Application) {
	app.Flag("elements", "Number of elements to append.").Default("1000").IntVar(&cfg.Elements)
	app.Flag("reserve", "Capacity to reserve before the workload starts.").Default("0").IntVar(&cfg.Reserve)
	app.Flag("insert-every", "Insert an element at the front after every N appends; 0 disables.").Default("0").IntVar(&cfg.InsertEvery)
	app.Flag("erase-every", "Erase the middle element after every N appends; 0 disables.").Default("0").IntVar(&cfg.EraseEvery)
	app.Flag("format", "Output format of the final report.").Default(formatLogfmt).EnumVar(&cfg.Format, formatLogfmt, formatProm)
	app.Flag("verbose", "Log every growth event.").Short('v').BoolVar(&cfg.Verbose)
}

// Validate checks the config for inconsistent values.
func (cfg *Config) Validate() error {
	switch {
	case cfg.Elements < 0:
		return errors.Errorf("invalid elements %d: must not be negative", cfg.Elements)
	case cfg.Reserve < 0:
		return errors.Errorf("invalid reserve %d: must not be negative", cfg.Reserve)
	case cfg.InsertEvery < 0 || cfg.EraseEvery < 0:
		return errors.New("insert-every and erase-every must not be negative")
	}
	return nil
}
