package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zetetos/pointcloud"
	"github.com/zetetos/pointcloud/internal/export"
	"github.com/zetetos/pointcloud/internal/filter"
)

const usage = `pcdump - Print the points stored in a capture file

Usage:
  pcdump [flags]

With no flags the first frame of out1.dat in the working directory is printed
as one (x, y, z) tuple per line.

Flags:
  -f <file>            Capture file to read, .gz files are decompressed (default out1.dat)
  -all                 Read every frame instead of only the first
  -format <text|csv>   Output format (default text)
  -filter <expr>       JavaScript expression selecting points, e.g. "z < 2 && r > 128"
                       Variables: x, y, z, c, r, g, b, frame, index
  -log-level <level>   trace, debug, info, warn, error or off (default warn)
  -no-color            Disable colored diagnostics
  -help                Show this help message
`

const defaultFile = "out1.dat"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("pcdump", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() { fmt.Fprint(stderr, usage) }

	var (
		file      = flags.String("f", defaultFile, "Capture file to read")
		allFrames = flags.Bool("all", false, "Read every frame")
		format    = flags.String("format", export.FormatText, "Output format")
		expr      = flags.String("filter", "", "Point filter expression")
		logLevel  = flags.String("log-level", "warn", "Log level")
		noColor   = flags.Bool("no-color", false, "Disable colored output")
		help      = flags.Bool("help", false, "Show help message")
	)

	err := flags.Parse(args)
	if err != nil {
		return 2
	}

	if *help {
		fmt.Fprint(stdout, usage)

		return 0
	}

	printer := newColorPrinter(*noColor)

	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "%s unexpected arguments %q\n\n", printer.Red("Error:"), flags.Args())
		fmt.Fprint(stderr, usage)

		return 2
	}

	log := pointcloud.NewLogger(pointcloud.Options{LogLevel: *logLevel})

	pointFilter, err := filter.New(*expr)
	if err != nil {
		fmt.Fprintf(stderr, "%s %v\n", printer.Red("Error:"), err)

		return 1
	}

	writer, err := export.New(*format, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "%s %v\n", printer.Red("Error:"), err)

		return 1
	}

	opts := pointcloud.Options{
		Logger:       &log,
		AllFrames:    *allFrames,
		StatsEnabled: *logLevel == "info" || *logLevel == "debug" || *logLevel == "trace",
	}

	printed := 0

	err = pointcloud.ReadFile(*file, opts, func(r *pointcloud.Reader) error {
		for point, err := range r.Records() {
			if err != nil {
				return err
			}

			frame, index := r.Position()

			match, err := pointFilter.Match(frame, index, point)
			if err != nil {
				return err
			}

			if !match {
				continue
			}

			err = writer.WritePoint(frame, index, point)
			if err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			printed++
		}

		return nil
	})

	// points decoded before a failure stay visible
	flushErr := writer.Flush()
	if err == nil && flushErr != nil {
		err = fmt.Errorf("write output: %w", flushErr)
	}

	if err != nil {
		if printed > 0 {
			fmt.Fprintf(stderr, "%s %d points printed before the failure\n", printer.Yellow("Warning:"), printed)
		}

		fmt.Fprintf(stderr, "%s %v\n", printer.Red("Error:"), err)

		return 1
	}

	log.Debug().Int("points", printed).Str("file", *file).Msg("capture printed")

	return 0
}
