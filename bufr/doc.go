// Package bufr defines the decoded-message contract the extraction pipeline
// is built on.
//
// A BUFR decoder presents each message as an ordered sequence of keys with
// associated values. This package does not decode the binary data sections
// itself; it specifies the Message interface a decoder must satisfy and ships
// DecodedMessage, an in-memory implementation used by tests, tools, and
// decoder bindings that materialize their key/value pairs up front.
//
// # The key space
//
// Keys come in three kinds:
//
//   - Data keys such as "edition" or "#1#airTemperature". Repeated element
//     names carry a "#<rank>#" occurrence prefix. These are the keys a
//     message yields from Keys, in decoding order.
//   - Attribute keys such as "#1#airTemperature->code". They annotate a data
//     key with table metadata and are reachable through Get only.
//   - Control keys such as "unpack". Writing one through Set changes decoder
//     behavior without introducing a data key.
//
// # Values
//
// Values are dynamically typed. Decoders produce int64, float64 and string
// scalars, their slice forms for per-subset arrays in compressed messages,
// and the MissingDouble/MissingLong sentinels for values absent from the data
// section. The As* helpers in this package coerce across the numeric types a
// decoder may choose.
//
// # Building messages by hand
//
//	msg := bufr.NewDecodedMessage().
//	    Add("edition", int64(4)).
//	    Add("#1#latitude", 51.5).
//	    Add("#1#latitude->code", "005001").
//	    Add("#1#airTemperature", 285.4)
//
//	for key := range msg.Keys() {
//	    // yields edition, #1#latitude, #1#airTemperature;
//	    // the attribute key stays hidden
//	}
package bufr
