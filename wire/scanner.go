package wire

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/meteogo/bufrobs/errs"
	"github.com/meteogo/bufrobs/internal/options"
)

// RawMessage is one framed message cut out of a stream.
type RawMessage struct {
	// Offset is the byte position of the message's magic number in the
	// scanned stream.
	Offset int64
	// Edition is the BUFR edition from section 0.
	Edition uint8
	// Data is the complete message, magic through terminator.
	Data []byte
}

// Scanner extracts framed BUFR messages from a byte stream.
//
// Real feeds interleave messages with routing headers, line noise and
// abstract headers from the originating centre, so the scanner hunts for
// the "BUFR" magic, frames the message by the total length declared in
// section 0, and verifies the "7777" terminator. Bytes between messages are
// skipped and reported at debug level.
//
// A Scanner reads the stream once; create a new one per stream.
type Scanner struct {
	br      *bufio.Reader
	maxSize int
	logger  *slog.Logger
	pos     int64
}

// ScannerOption configures a Scanner.
type ScannerOption = options.Option[*Scanner]

// WithMaxMessageSize caps the declared message length the scanner accepts,
// between the structural minimum and the format's 16 MiB ceiling. Messages
// declaring more are rejected instead of read.
func WithMaxMessageSize(n int) ScannerOption {
	return options.New(func(s *Scanner) error {
		if n < minMessageLen || n > MaxMessageLength {
			return fmt.Errorf("max message size out of range: %d", n)
		}
		s.maxSize = n

		return nil
	})
}

// WithLogger attaches a structured logger for scan diagnostics. The scanner
// logs at debug level only.
func WithLogger(logger *slog.Logger) ScannerOption {
	return options.NoError(func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	})
}

// NewScanner creates a scanner over r.
func NewScanner(r io.Reader, opts ...ScannerOption) (*Scanner, error) {
	s := &Scanner{
		br:      bufio.NewReaderSize(r, 64*1024),
		maxSize: MaxMessageLength,
		logger:  slog.Default(),
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// Messages lazily yields each framed message in stream order. The sequence
// ends cleanly at end of input; a framing or read error is yielded once and
// ends the sequence, since the stream position is no longer trustworthy
// past a bad frame.
func (s *Scanner) Messages() iter.Seq2[RawMessage, error] {
	return func(yield func(RawMessage, error) bool) {
		for {
			msg, err := s.next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(RawMessage{}, err)

				return
			}
			if !yield(msg, nil) {
				return
			}
		}
	}
}

// next scans to the next magic number and reads one complete message.
// io.EOF reports a clean end of input.
func (s *Scanner) next() (RawMessage, error) {
	start, skipped, err := s.seekMagic()
	if err != nil {
		if err == io.EOF && skipped > 0 {
			s.logger.Debug("discarded trailing bytes with no message start",
				"bytes", skipped)
		}

		return RawMessage{}, err
	}
	if skipped > 0 {
		s.logger.Debug("skipped bytes before message start",
			"offset", start, "bytes", skipped)
	}

	header := make([]byte, section0Len)
	copy(header, magic)
	if _, err := io.ReadFull(s.br, header[len(magic):]); err != nil {
		return RawMessage{}, fmt.Errorf("%w: stream ends inside section 0 at offset %d",
			errs.ErrTruncatedMessage, start)
	}
	s.pos += int64(section0Len - len(magic))

	s0, err := ParseSection0(header)
	if err != nil {
		return RawMessage{}, err
	}
	if s0.TotalLength > s.maxSize {
		return RawMessage{}, fmt.Errorf("%w: %d bytes at offset %d exceeds cap %d",
			errs.ErrMessageTooLarge, s0.TotalLength, start, s.maxSize)
	}

	data := make([]byte, s0.TotalLength)
	copy(data, header)
	n, err := io.ReadFull(s.br, data[section0Len:])
	s.pos += int64(n)
	if err != nil {
		return RawMessage{}, fmt.Errorf("%w: message at offset %d declares %d bytes",
			errs.ErrTruncatedMessage, start, s0.TotalLength)
	}
	if string(data[len(data)-len(terminator):]) != terminator {
		return RawMessage{}, fmt.Errorf("%w: message at offset %d",
			errs.ErrInvalidTerminator, start)
	}

	return RawMessage{Offset: start, Edition: s0.Edition, Data: data}, nil
}

// seekMagic consumes input up to and including the next "BUFR" marker,
// returning the marker's offset and how many bytes were skipped before it.
func (s *Scanner) seekMagic() (int64, int64, error) {
	var skipped int64
	for {
		b, err := s.br.ReadByte()
		if err != nil {
			return s.pos, skipped, err
		}
		s.pos++
		if b != magic[0] {
			skipped++
			continue
		}

		rest, err := s.br.Peek(len(magic) - 1)
		if err != nil && err != io.EOF {
			return s.pos, skipped, err
		}
		if string(rest) != magic[1:] {
			skipped++
			continue
		}

		start := s.pos - 1
		if _, err := s.br.Discard(len(magic) - 1); err != nil {
			return start, skipped, err
		}
		s.pos += int64(len(magic) - 1)

		return start, skipped, nil
	}
}
