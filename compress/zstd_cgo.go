//go:build cgo

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

// newZstdReader wraps r with the libzstd streaming decompressor.
func newZstdReader(r io.Reader) (io.Reader, error) {
	return gozstd.NewReader(r), nil
}
