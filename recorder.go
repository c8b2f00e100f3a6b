package pointcloud

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/zetetos/pointcloud/internal/reader"
	"github.com/zetetos/pointcloud/pkg/models"
)

const PlainExtension = ".dat"

// Recorder writes frames to a capture file, plain (.dat) or gzip compressed
// (.gz).
type Recorder struct {
	mu      sync.Mutex
	log     zerolog.Logger
	path    string
	file    *os.File
	gz      *gzip.Writer
	buf     *bufio.Writer
	encoder *Encoder
	frames  int
}

func NewRecorder(log zerolog.Logger) *Recorder {
	return &Recorder{log: log}
}

func (r *Recorder) StartRecording(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file != nil {
		return fmt.Errorf("%w to %s", ErrAlreadyRecording, r.path)
	}

	compressed := strings.HasSuffix(path, reader.GzipExtension)
	if !compressed && filepath.Ext(path) != PlainExtension {
		return fmt.Errorf("%w %q, use either %s or %s", ErrUnsupportedExtension, filepath.Ext(path), PlainExtension, reader.GzipExtension)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create recording file: %w", err)
	}

	r.file = file
	r.path = path
	r.frames = 0
	r.buf = bufio.NewWriter(file)

	if compressed {
		r.gz = gzip.NewWriter(r.buf)
		r.encoder = NewEncoder(r.gz)
	} else {
		r.encoder = NewEncoder(r.buf)
	}

	r.log.Info().Str("file", path).Bool("gzip", compressed).Msg("recording started")

	return nil
}

func (r *Recorder) WriteFrame(points []models.Point) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return ErrNotRecording
	}

	err := r.encoder.WriteFrame(points)
	if err != nil {
		return err
	}

	r.frames++
	r.log.Debug().Int("frame", r.frames).Int("points", len(points)).Msg("frame recorded")

	return nil
}

func (r *Recorder) StopRecording() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return ErrNotRecording
	}

	var err error

	if r.gz != nil {
		err = r.gz.Close()
	}

	if err == nil {
		err = r.buf.Flush()
	}

	closeErr := r.file.Close()
	if err == nil {
		err = closeErr
	}

	r.log.Info().Str("file", r.path).Int("frames", r.frames).Msg("recording stopped")

	r.file = nil
	r.gz = nil
	r.buf = nil
	r.encoder = nil

	if err != nil {
		return fmt.Errorf("finish recording: %w", err)
	}

	return nil
}

func (r *Recorder) IsRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.file != nil
}

func (r *Recorder) FramesWritten() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.frames
}
