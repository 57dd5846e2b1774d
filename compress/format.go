package compress

import "bytes"

// Format identifies the container compression wrapped around a BUFR stream.
type Format uint8

const (
	FormatNone Format = iota // FormatNone represents an uncompressed stream.
	FormatGzip               // FormatGzip represents a gzip stream.
	FormatZstd               // FormatZstd represents a Zstandard stream.
	FormatLZ4                // FormatLZ4 represents an LZ4 frame stream.
	FormatS2                 // FormatS2 represents an S2 or snappy framed stream.
)

func (f Format) String() string {
	switch f {
	case FormatNone:
		return "None"
	case FormatGzip:
		return "Gzip"
	case FormatZstd:
		return "Zstd"
	case FormatLZ4:
		return "LZ4"
	case FormatS2:
		return "S2"
	default:
		return "Unknown"
	}
}

// maxMagicLen is the longest prefix Detect needs to decide.
const maxMagicLen = 10

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}

	// The framed formats share the stream identifier chunk header and
	// differ in the six byte body. S2 readers accept both.
	magicS2     = []byte{0xff, 0x06, 0x00, 0x00, 'S', '2', 's', 'T', 'w', 'O'}
	magicSnappy = []byte{0xff, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}
)

// Detect identifies the compression container from the first bytes of a
// stream. A prefix shorter than a format's magic number never matches it,
// and prefixes with no known magic report FormatNone.
func Detect(prefix []byte) Format {
	switch {
	case bytes.HasPrefix(prefix, magicGzip):
		return FormatGzip
	case bytes.HasPrefix(prefix, magicZstd):
		return FormatZstd
	case bytes.HasPrefix(prefix, magicLZ4):
		return FormatLZ4
	case bytes.HasPrefix(prefix, magicS2), bytes.HasPrefix(prefix, magicSnappy):
		return FormatS2
	default:
		return FormatNone
	}
}
