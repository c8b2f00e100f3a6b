package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/zetetos/pointcloud"
	"github.com/zetetos/pointcloud/internal/calibration"
	"github.com/zetetos/pointcloud/internal/kinect"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("pcsynth", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		outFile    = flags.String("o", "out1.dat", "Output file name, .dat or .gz. Default: out1.dat")
		frameCount = flags.Int("frames", 1, "Number of frames to write. Default: 1")
		calibFile  = flags.String("calibration", "", "Calibration JSON file. Default: built-in Kinect calibration")
		logLevel   = flags.String("log-level", "info", "Log level. Default: info")
	)

	err := flags.Parse(args)
	if err != nil {
		return 2
	}

	if *frameCount < 1 {
		fmt.Fprintln(stderr, "Error: frame count must be at least 1")

		return 2
	}

	log := pointcloud.NewLogger(pointcloud.Options{LogLevel: *logLevel})

	cal, err := calibration.Load(*calibFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return 1
	}

	err = record(ctx, *outFile, *frameCount, cal, log)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return 1
	}

	fmt.Fprintf(stdout, "Capture complete, %d frames written to %s\n", *frameCount, *outFile)

	return 0
}

func record(ctx context.Context, path string, frames int, cal calibration.Calibration, log zerolog.Logger) (err error) {
	converter := kinect.NewConverter(cal)
	recorder := pointcloud.NewRecorder(log)

	err = recorder.StartRecording(path)
	if err != nil {
		return fmt.Errorf("start recording: %w", err)
	}

	defer func() {
		stopErr := recorder.StopRecording()
		if stopErr != nil {
			err = errors.Join(err, stopErr)
		}
	}()

	for i := range frames {
		select {
		case <-ctx.Done():
			return fmt.Errorf("interrupted after %d frames: %w", i, ctx.Err())
		default:
		}

		points, err := converter.Convert(synthesizeFrame(cal, i))
		if err != nil {
			return fmt.Errorf("convert frame %d: %w", i, err)
		}

		err = recorder.WriteFrame(points)
		if err != nil {
			return fmt.Errorf("record frame %d: %w", i, err)
		}
	}

	return nil
}
