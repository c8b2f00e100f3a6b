package reader

import "io"

// Reader is a forward only byte source for a capture file. Seek only reports
// the current offset, which is all the kaitai stream needs.
type Reader interface {
	io.ReadSeeker
	io.Closer
}
