package compress

import (
	"bufio"
	"fmt"
	"io"

	"github.com/meteogo/bufrobs/errs"
)

// NewReader sniffs the compression container of r and returns a reader over
// the decompressed stream, along with the format it found. Streams without
// a known magic number pass through unchanged as FormatNone.
//
// The sniff buffers r; callers must continue reading through the returned
// reader, not from r directly.
func NewReader(r io.Reader) (io.Reader, Format, error) {
	br := bufio.NewReader(r)
	prefix, err := br.Peek(maxMagicLen)
	if err != nil && err != io.EOF {
		return nil, FormatNone, err
	}

	format := Detect(prefix)
	wrapped, err := NewFormatReader(br, format)
	if err != nil {
		return nil, format, err
	}

	return wrapped, format, nil
}

// NewFormatReader wraps r with the decompressor for a format the caller
// already knows, from a file extension or a transport header. FormatNone
// returns r unchanged.
func NewFormatReader(r io.Reader, f Format) (io.Reader, error) {
	switch f {
	case FormatNone:
		return r, nil
	case FormatGzip:
		return newGzipReader(r)
	case FormatZstd:
		return newZstdReader(r)
	case FormatLZ4:
		return newLZ4Reader(r)
	case FormatS2:
		return newS2Reader(r)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, f)
	}
}
