package pointcloud

import "errors"

var (
	ErrTruncatedHeader      = errors.New("truncated frame header")
	ErrTruncatedRecord      = errors.New("truncated point record")
	ErrFrameTooLarge        = errors.New("frame has more points than a header can count")
	ErrAlreadyRecording     = errors.New("already recording")
	ErrNotRecording         = errors.New("not recording")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
)
