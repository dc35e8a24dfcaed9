// Command vecstat drives a vector through a synthetic workload and reports
// how its storage evolved.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	app := kingpin.New("vecstat", "Trace the growth of a vector under a synthetic workload.")
	app.HelpFlag.Short('h')

	var cfg Config
	cfg.RegisterFlags(app)

	if _, err := app.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if cfg.Verbose {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	if err := run(cfg, logger, os.Stdout); err != nil {
		level.Error(logger).Log("msg", "workload failed", "err", err)
		os.Exit(1)
	}
}
