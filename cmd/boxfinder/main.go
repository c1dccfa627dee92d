// boxfinder — rectangle enumeration benchmark
//
// Times the cubic, slicing, and complete rectangle-enumeration strategies
// on one problem instance and prints the three elapsed times in seconds.
//
// Build:
//   go build -o boxfinder ./cmd/boxfinder
//
// Usage:
//   boxfinder [flags] <inputfile>
//
// The input file is the whitespace-separated harness format; .csv and
// .xlsx files with the same fields are also accepted.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/boxkit/boxfinder/internal/bench"
	"github.com/boxkit/boxfinder/internal/config"
	"github.com/boxkit/boxfinder/internal/engine"
	"github.com/boxkit/boxfinder/internal/loader"
)

const (
	exitUsage    = -1
	exitFileOpen = -2
)

func main() {
	var (
		parallel   = flag.Bool("parallel", false, "time the strategies concurrently, each on its own copy of the instance")
		check      = flag.Bool("check", false, "verify cross-strategy result equivalence after timing")
		configPath = flag.String("config", config.DefaultPath(), "settings file path")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(exitUsage)
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Warn("cannot read settings, using defaults")
		settings = config.Default()
	}
	if level, err := logrus.ParseLevel(settings.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if *parallel {
		settings.Parallel = true
	}
	if *check {
		settings.Check = true
	}

	inst, err := loader.ReadInstance(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: file %s could not be read: %v\n", flag.Arg(0), err)
		os.Exit(exitFileOpen)
	}

	report, err := bench.Run(inst, bench.Options{Parallel: settings.Parallel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(report.FormatLine())

	if settings.Check {
		reports, err := engine.CompareStrategies(inst, settings.Tolerance)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		ok := true
		for _, r := range reports {
			if !r.MatchesComplete {
				fmt.Fprintf(os.Stderr, "mismatch: %s result set differs from complete (%d boxes)\n", r.Name, r.Boxes)
				ok = false
			}
		}
		if !ok {
			os.Exit(1)
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <inputfile>\n", os.Args[0])
	flag.PrintDefaults()
}
