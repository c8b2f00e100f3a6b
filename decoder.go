package pointcloud

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
	"github.com/rs/zerolog"

	"github.com/zetetos/pointcloud/internal/pointframe"
	"github.com/zetetos/pointcloud/internal/reader"
	"github.com/zetetos/pointcloud/pkg/models"
)

// Decoder reads point records from a capture stream. By default only the
// first frame is read; WithAllFrames continues across frame boundaries.
type Decoder struct {
	stream    *kaitai.Stream
	log       zerolog.Logger
	allFrames bool

	frame int    // -1 until the first header has been read
	count uint32 // records declared by the current header
	index uint32 // records already returned from the current frame
	err   error
}

type DecoderOption func(*Decoder)

func WithAllFrames() DecoderOption {
	return func(d *Decoder) {
		d.allFrames = true
	}
}

func WithLogger(log zerolog.Logger) DecoderOption {
	return func(d *Decoder) {
		d.log = log
	}
}

func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	seeker, ok := r.(io.ReadSeeker)
	if !ok {
		seeker = reader.NewForwardReader(r)
	}

	decoder := &Decoder{
		stream: kaitai.NewStream(seeker),
		log:    zerolog.Nop(),
		frame:  -1,
	}

	for _, opt := range opts {
		opt(decoder)
	}

	return decoder
}

// Count returns the number of records declared by the current frame header,
// reading the first header if nothing has been read yet.
func (d *Decoder) Count() (uint32, error) {
	if d.frame < 0 && d.err == nil {
		d.err = d.readHeader()
	}

	if d.err != nil && d.frame < 0 {
		return 0, d.err
	}

	return d.count, nil
}

// Position returns the frame and record index of the last returned point.
func (d *Decoder) Position() (frame int, index int) {
	return d.frame, int(d.index) - 1
}

// Next returns the next point record. It returns io.EOF once every requested
// frame has been read. Errors are sticky.
func (d *Decoder) Next() (models.Point, error) {
	if d.err != nil {
		return models.Point{}, d.err
	}

	for d.frame < 0 || d.index == d.count {
		if d.frame >= 0 && !d.allFrames {
			d.err = io.EOF

			return models.Point{}, d.err
		}

		d.err = d.readHeader()
		if d.err != nil {
			return models.Point{}, d.err
		}
	}

	point, err := pointframe.ReadPoint(d.stream)
	if err != nil {
		d.err = d.recordError(err)

		return models.Point{}, d.err
	}

	d.index++

	return point.Model(), nil
}

// Points returns the (x, y, z) triples of the remaining records. A decode
// failure is yielded once as the final element.
func (d *Decoder) Points() iter.Seq2[models.Coordinate, error] {
	return func(yield func(models.Coordinate, error) bool) {
		for point, err := range d.Records() {
			if !yield(point.Coordinate(), err) {
				return
			}
		}
	}
}

// Records is Points with the auxiliary value kept.
func (d *Decoder) Records() iter.Seq2[models.Point, error] {
	return func(yield func(models.Point, error) bool) {
		for {
			point, err := d.Next()
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

func isEndOfCapture(err error) bool {
	return errors.Is(err, io.EOF)
}

func (d *Decoder) readHeader() error {
	count, err := pointframe.ReadHeader(d.stream)
	if err != nil {
		switch {
		case d.frame >= 0 && errors.Is(err, io.EOF):
			d.log.Debug().Int("frames", d.frame+1).Msg("end of capture")

			return io.EOF
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return fmt.Errorf("%w: frame %d", ErrTruncatedHeader, d.frame+1)
		default:
			return fmt.Errorf("read frame header: %w", err)
		}
	}

	d.frame++
	d.count = count
	d.index = 0

	d.log.Debug().Int("frame", d.frame).Uint32("count", count).Msg("read frame header")

	return nil
}

func (d *Decoder) recordError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: record %d of %d in frame %d", ErrTruncatedRecord, d.index, d.count, d.frame)
	}

	return fmt.Errorf("read record %d: %w", d.index, err)
}
