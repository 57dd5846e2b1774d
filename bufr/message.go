package bufr

import "iter"

// Missing value sentinels as produced by BUFR decoders for data that is
// encoded as "missing" in the wire format.
const (
	// MissingDouble marks a missing floating point value.
	MissingDouble float64 = -1e+100

	// MissingLong marks a missing integer value.
	MissingLong int64 = 2147483647
)

// AttrSep separates a data key from an attribute name, as in
// "#1#pressure->code".
const AttrSep = "->"

// Message is a single decoded BUFR message.
//
// Implementations adapt a concrete decoder to the extraction pipeline. The
// pipeline is single-threaded; implementations do not need to be safe for
// concurrent use.
type Message interface {
	// Keys yields every data key of the message in decoding order. Attribute
	// keys ("...->code" and friends) are not part of the sequence.
	Keys() iter.Seq[string]

	// Get returns the value stored under key, including attribute keys and
	// previously written control keys. It returns an error wrapping
	// errs.ErrKeyNotFound when the key does not exist.
	Get(key string) (any, error)

	// Set writes a value under key. Writing an existing data key replaces
	// its value; writing an unknown key records a control setting that never
	// appears in Keys.
	Set(key string, value any) error
}
