package pointcloud

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/rs/zerolog"

	"github.com/zetetos/pointcloud/internal/reader"
	"github.com/zetetos/pointcloud/pkg/models"
)

type statistics struct {
	enabled        bool
	frameLast      int
	decodeTimeLast time.Duration
	DecodeTimeAvg  time.Duration
	DecodeTimeMax  time.Duration
	FramesRead     int // frames holding at least one point
	PointsRead     int
}

// Reader decodes a capture file from disk.
type Reader struct {
	log        zerolog.Logger
	source     reader.Reader
	decoder    *Decoder
	Statistics *statistics
}

// Open opens a capture file read-only. Files ending in .gz are read through
// gzip. The caller must Close the reader.
func Open(path string, opts Options) (*Reader, error) {
	log := NewLogger(opts)

	source, err := reader.NewFileReader(path, log)
	if err != nil {
		return nil, fmt.Errorf("setup file reader: %w", err)
	}

	decoderOpts := []DecoderOption{WithLogger(log)}
	if opts.AllFrames {
		decoderOpts = append(decoderOpts, WithAllFrames())
	}

	return &Reader{
		log:     log,
		source:  source,
		decoder: NewDecoder(source, decoderOpts...),
		Statistics: &statistics{
			enabled:   opts.StatsEnabled,
			frameLast: -1,
		},
	}, nil
}

// ReadFile opens path, hands the reader to fn and closes the file on every
// return path.
func ReadFile(path string, opts Options, fn func(*Reader) error) (err error) {
	r, err := Open(path, opts)
	if err != nil {
		return err
	}

	defer func() {
		closeErr := r.Close()
		if closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close capture file: %w", closeErr))
		}
	}()

	return fn(r)
}

func (r *Reader) Count() (uint32, error) {
	return r.decoder.Count()
}

func (r *Reader) Position() (frame int, index int) {
	return r.decoder.Position()
}

func (r *Reader) Next() (models.Point, error) {
	decodeStart := time.Now()

	point, err := r.decoder.Next()
	if err != nil {
		return point, err
	}

	r.Statistics.decodeTimeLast = time.Since(decodeStart)
	r.collectStats()

	return point, nil
}

func (r *Reader) Points() iter.Seq2[models.Coordinate, error] {
	return func(yield func(models.Coordinate, error) bool) {
		for point, err := range r.Records() {
			if !yield(point.Coordinate(), err) {
				return
			}
		}
	}
}

func (r *Reader) Records() iter.Seq2[models.Point, error] {
	return func(yield func(models.Point, error) bool) {
		for {
			point, err := r.Next()
			if isEndOfCapture(err) {
				return
			}

			if err != nil {
				yield(models.Point{}, err)

				return
			}

			if !yield(point, nil) {
				return
			}
		}
	}
}

func (r *Reader) Close() error {
	if r.Statistics.enabled {
		r.log.Info().
			Int("frames", r.Statistics.FramesRead).
			Int("points", r.Statistics.PointsRead).
			Dur("decode_time_avg", r.Statistics.DecodeTimeAvg).
			Dur("decode_time_max", r.Statistics.DecodeTimeMax).
			Msg("capture statistics")
	}

	return r.source.Close()
}

func (r *Reader) collectStats() {
	if !r.Statistics.enabled {
		return
	}

	r.Statistics.PointsRead++

	frame, _ := r.decoder.Position()
	if frame != r.Statistics.frameLast {
		r.Statistics.frameLast = frame
		r.Statistics.FramesRead++
	}

	if r.Statistics.PointsRead == 1 {
		r.Statistics.DecodeTimeAvg = r.Statistics.decodeTimeLast
	} else {
		r.Statistics.DecodeTimeAvg = (r.Statistics.DecodeTimeAvg + r.Statistics.decodeTimeLast) / 2
	}

	if r.Statistics.decodeTimeLast > r.Statistics.DecodeTimeMax {
		r.Statistics.DecodeTimeMax = r.Statistics.decodeTimeLast
	}
}
