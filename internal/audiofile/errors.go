package audiofile

import "errors"

var (
	ErrUnsupportedFormat   = errors.New("audiofile: unsupported file format")
	ErrUnsupportedBitDepth = errors.New("audiofile: unsupported bit depth")
	ErrInvalidFile         = errors.New("audiofile: invalid or corrupt file")
	ErrNoChannels          = errors.New("audiofile: stream has no channels")
)
