package wire

import (
	"fmt"

	"github.com/meteogo/bufrobs/errs"
)

const (
	magic      = "BUFR"
	terminator = "7777"

	section0Len   = 8
	minMessageLen = section0Len + len(terminator)

	// MaxMessageLength is the format's ceiling: the total length field in
	// section 0 is 24 bits wide.
	MaxMessageLength = 1<<24 - 1
)

// Section0 is the fixed leading section of every message: the magic number,
// the total message length and the edition.
type Section0 struct {
	// TotalLength counts every byte of the message, magic through
	// terminator.
	TotalLength int
	// Edition is the BUFR edition number. Editions 2 through 4 carry a
	// total length in section 0; older editions do not and cannot be
	// framed by length.
	Edition uint8
}

// ParseSection0 decodes the eight byte section 0 from the start of raw.
func ParseSection0(raw []byte) (Section0, error) {
	if len(raw) < section0Len {
		return Section0{}, fmt.Errorf("%w: section 0 needs %d bytes, have %d",
			errs.ErrTruncatedMessage, section0Len, len(raw))
	}
	if string(raw[:len(magic)]) != magic {
		return Section0{}, fmt.Errorf("%w: %q", errs.ErrInvalidMagicNumber, raw[:len(magic)])
	}

	s0 := Section0{
		TotalLength: int(raw[4])<<16 | int(raw[5])<<8 | int(raw[6]),
		Edition:     raw[7],
	}
	if s0.Edition < 2 || s0.Edition > 4 {
		return Section0{}, fmt.Errorf("%w: %d", errs.ErrUnsupportedEdition, s0.Edition)
	}
	if s0.TotalLength < minMessageLen {
		return Section0{}, fmt.Errorf("%w: %d", errs.ErrInvalidMessageLength, s0.TotalLength)
	}

	return s0, nil
}
