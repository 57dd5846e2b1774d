// Package errs defines the sentinel errors shared across the bufrobs packages.
//
// Errors returned by this module either are one of these sentinels or wrap one
// with additional context, so callers can always classify failures with
// errors.Is:
//
//	if errors.Is(err, errs.ErrTruncatedMessage) {
//	    // incomplete trailing message, stream ended mid-frame
//	}
package errs

import "errors"

// Message access errors.
var (
	// ErrKeyNotFound is returned by Message.Get when the requested key does
	// not exist in the decoded message.
	ErrKeyNotFound = errors.New("key not found")
)

// Frame scanning errors.
var (
	// ErrInvalidMagicNumber is returned when a frame does not start with the
	// "BUFR" marker.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidTerminator is returned when a frame does not end with the
	// "7777" marker required by the format.
	ErrInvalidTerminator = errors.New("invalid message terminator")

	// ErrUnsupportedEdition is returned for edition numbers outside the
	// supported 2..4 range.
	ErrUnsupportedEdition = errors.New("unsupported edition")

	// ErrInvalidMessageLength is returned when the declared total length is
	// too small to hold the fixed sections.
	ErrInvalidMessageLength = errors.New("invalid message length")

	// ErrMessageTooLarge is returned when the declared total length exceeds
	// the scanner's configured limit.
	ErrMessageTooLarge = errors.New("message exceeds size limit")

	// ErrTruncatedMessage is returned when the input ends before the declared
	// end of the current message.
	ErrTruncatedMessage = errors.New("truncated message")
)

// Stream configuration errors.
var (
	// ErrNoColumns is returned when a streamer is built without any output
	// columns.
	ErrNoColumns = errors.New("no columns specified")

	// ErrInvalidRequiredColumns is returned when a required-columns spec is
	// left in its zero state instead of being built by one of the
	// constructors.
	ErrInvalidRequiredColumns = errors.New("invalid required columns spec")
)

// Compression errors.
var (
	// ErrUnknownCompression is returned when a compression format name or id
	// is not recognized.
	ErrUnknownCompression = errors.New("unknown compression format")
)
