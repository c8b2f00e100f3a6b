package reader

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const GzipExtension = ".gz"

var ErrNotSeekable = errors.New("capture source only reports its current offset")

type FileReader struct {
	*ForwardReader

	log       zerolog.Logger
	closers   []func() error
	closeOnce sync.Once
}

// ForwardReader gives a plain io.Reader the io.ReadSeeker shape a kaitai
// stream expects. It can only report its current offset.
type ForwardReader struct {
	source io.Reader
	offset int64
}

func NewForwardReader(source io.Reader) *ForwardReader {
	return &ForwardReader{source: source}
}

func NewFileReader(file string, log zerolog.Logger) (*FileReader, error) {
	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %w", err)
	} else if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	fh, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	reader := &FileReader{
		ForwardReader: NewForwardReader(bufio.NewReader(fh)),
		log:           log,
		closers:       []func() error{fh.Close},
	}

	if strings.HasSuffix(file, GzipExtension) {
		gzReader, err := gzip.NewReader(reader.source)
		if err != nil {
			_ = fh.Close()

			return nil, fmt.Errorf("create gzip reader: %w", err)
		}

		reader.source = gzReader
		// gzip reader is closed before the file it reads from
		reader.closers = append([]func() error{gzReader.Close}, reader.closers...)
	}

	log.Debug().Str("file", file).Bool("gzip", len(reader.closers) > 1).Msg("opened capture file")

	return reader, nil
}

func (r *ForwardReader) Read(p []byte) (int, error) {
	n, err := r.source.Read(p)
	r.offset += int64(n)

	return n, err
}

func (r *ForwardReader) Seek(offset int64, whence int) (int64, error) {
	if offset == 0 && whence == io.SeekCurrent {
		return r.offset, nil
	}

	return r.offset, fmt.Errorf("%w: seek(%d, %d)", ErrNotSeekable, offset, whence)
}

func (r *FileReader) Close() error {
	var closeErr error

	r.closeOnce.Do(func() {
		r.log.Debug().Int64("offset", r.offset).Msg("closing capture file")

		for _, closer := range r.closers {
			err := closer()
			if err != nil && closeErr == nil {
				closeErr = err
			}
		}
	})

	return closeErr
}
