package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/zetetos/pointcloud/pkg/models"
)

type csvFloat float32

func (f csvFloat) MarshalCSV() (string, error) {
	return FormatFloat(float32(f)), nil
}

type csvRow struct {
	Frame int      `csv:"frame"`
	Index int      `csv:"index"`
	X     csvFloat `csv:"x"`
	Y     csvFloat `csv:"y"`
	Z     csvFloat `csv:"z"`
	C     uint32   `csv:"c"`
}

// CSVWriter writes one row per point; the header goes out with the first row.
type CSVWriter struct {
	out           *bufio.Writer
	headerWritten bool
}

func NewCSVWriter(out io.Writer) *CSVWriter {
	return &CSVWriter{out: bufio.NewWriter(out)}
}

func (w *CSVWriter) WritePoint(frame, index int, point models.Point) error {
	rows := []csvRow{{
		Frame: frame,
		Index: index,
		X:     csvFloat(point.X),
		Y:     csvFloat(point.Y),
		Z:     csvFloat(point.Z),
		C:     point.C,
	}}

	var err error
	if w.headerWritten {
		err = gocsv.MarshalWithoutHeaders(&rows, w.out)
	} else {
		err = gocsv.Marshal(&rows, w.out)
	}

	if err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}

	w.headerWritten = true

	return nil
}

// Flush writes the header if no row was written, so an empty capture still
// produces a valid CSV document.
func (w *CSVWriter) Flush() error {
	if !w.headerWritten {
		rows := []csvRow{}

		err := gocsv.Marshal(&rows, w.out)
		if err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}

		w.headerWritten = true
	}

	return w.out.Flush()
}
