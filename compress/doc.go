// Package compress removes container compression from BUFR input streams.
//
// Observation archives rarely travel raw: dissemination feeds and archive
// files wrap the concatenated BUFR messages in gzip, Zstandard, LZ4 or S2
// containers. This package sniffs the container from the stream's first
// bytes and hands back a reader over the plain BUFR bytes, so the frame
// scanner never needs to know how an archive was stored.
//
// # Usage
//
//	r, format, err := compress.NewReader(file)
//	if err != nil {
//	    return err
//	}
//	// r yields the uncompressed stream; format reports what was found.
//
// Streams without a recognized magic number pass through untouched, which
// keeps plain BUFR files working with zero configuration. Callers that
// already know the container, from a file extension or a transport header,
// can skip the sniff with NewFormatReader.
//
// # Formats
//
//   - Gzip: the common container for dissemination feeds and daily archive
//     files. Concatenated gzip members read as one stream.
//   - Zstandard: decoding uses libzstd when cgo is available and a pure Go
//     decoder otherwise.
//   - LZ4: frame format streams.
//   - S2: S2 framed streams, including snappy framed input.
//
// Detection needs at most the first ten bytes and consumes nothing: the
// returned reader replays the stream from its start.
package compress
