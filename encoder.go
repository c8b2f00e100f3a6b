package pointcloud

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/zetetos/pointcloud/pkg/models"
)

// Encoder writes frames in the layout Decoder reads.
type Encoder struct {
	w   io.Writer
	buf []byte
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// WriteFrame writes the point count followed by every point record.
func (e *Encoder) WriteFrame(points []models.Point) error {
	if uint64(len(points)) > math.MaxUint32 {
		return fmt.Errorf("%w: %d", ErrFrameTooLarge, len(points))
	}

	e.buf = e.buf[:0]
	e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(len(points))) //nolint:gosec // bounds checked above

	for _, point := range points {
		e.buf = binary.LittleEndian.AppendUint32(e.buf, math.Float32bits(point.X))
		e.buf = binary.LittleEndian.AppendUint32(e.buf, math.Float32bits(point.Y))
		e.buf = binary.LittleEndian.AppendUint32(e.buf, math.Float32bits(point.Z))
		e.buf = binary.LittleEndian.AppendUint32(e.buf, point.C)
	}

	_, err := e.w.Write(e.buf)
	if err != nil {
		return fmt.Errorf("write frame: %w", err)
	}

	return nil
}
