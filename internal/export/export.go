package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/zetetos/pointcloud/pkg/models"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

const (
	FormatText = "text"
	FormatCSV  = "csv"
)

// Writer emits decoded points. Output is buffered until Flush.
type Writer interface {
	WritePoint(frame, index int, point models.Point) error
	Flush() error
}

func New(format string, out io.Writer) (Writer, error) {
	switch format {
	case FormatText, "":
		return NewTextWriter(out), nil
	case FormatCSV:
		return NewCSVWriter(out), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// TextWriter prints one (x, y, z) tuple per line.
type TextWriter struct {
	out *bufio.Writer
}

func NewTextWriter(out io.Writer) *TextWriter {
	return &TextWriter{out: bufio.NewWriter(out)}
}

func (w *TextWriter) WritePoint(_, _ int, point models.Point) error {
	_, err := fmt.Fprintf(w.out, "(%s, %s, %s)\n", FormatFloat(point.X), FormatFloat(point.Y), FormatFloat(point.Z))

	return err
}

func (w *TextWriter) Flush() error {
	return w.out.Flush()
}
