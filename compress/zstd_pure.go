//go:build !cgo

package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// newZstdReader wraps r with a pure Go Zstandard decompressor. Concurrency
// is pinned to one so the decoder runs inline, without worker goroutines
// the caller would have to shut down.
func newZstdReader(r io.Reader) (io.Reader, error) {
	zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}

	return zr.IOReadCloser(), nil
}
