// Package bufrobs extracts tabular observations from streams of BUFR
// messages.
//
// BUFR is the WMO's binary format for meteorological observation exchange.
// A BUFR file concatenates framed messages; each decoded message presents
// its content as a flat, ordered stream of keys whose hierarchy is implied
// by coordinate descriptors rather than stored. This module reconstructs
// that hierarchy and flattens every message into observation records, one
// per reported entity, with the enclosing coordinate context attached.
//
// # Pipeline
//
// The subpackages form a pipeline, and this package wires it together:
//
//   - compress sniffs and removes container compression (gzip, Zstandard,
//     LZ4, S2) from the input stream
//   - wire frames individual messages by magic number, declared length and
//     terminator
//   - bufr defines the decoded message view the rest of the module reads
//   - structure infers the coordinate hierarchy and caches it per message
//     structure
//   - filters matches header and observation values
//   - extract walks the hierarchy and emits observation records
//
// # Basic Usage
//
// Reading a file and extracting temperature observations:
//
//	import "github.com/meteogo/bufrobs"
//
//	decode := func(raw wire.RawMessage) (bufr.Message, error) {
//	    // Hand raw.Data to a table-driven section decoder and return the
//	    // decoded key/value view.
//	    return tables.Decode(raw.Data)
//	}
//
//	msgs := bufrobs.Messages(file, decode)
//	records := bufrobs.Extract(msgs,
//	    []string{"latitude", "longitude", "airTemperature"},
//	    extract.WithFilters(map[string]filters.Filter{
//	        "blockNumber": filters.Equal(91),
//	    }),
//	)
//	for rec, err := range records {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(rec.Map())
//	}
//
// Everything is lazy: messages are framed, decoded and walked one at a
// time, and abandoning the loop stops the pipeline without reading the
// rest of the stream.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the pipeline
// packages, simplifying the common read-and-extract case. For finer
// control, compose compress, wire and extract directly.
package bufrobs

import (
	"io"
	"iter"

	"github.com/meteogo/bufrobs/bufr"
	"github.com/meteogo/bufrobs/compress"
	"github.com/meteogo/bufrobs/extract"
	"github.com/meteogo/bufrobs/wire"
)

// DecodeFunc turns one framed message into its decoded key/value view.
//
// The module deliberately leaves section decoding pluggable: operational
// deployments decode against their own descriptor table sets, and tests
// substitute in-memory messages. A DecodeFunc receives the complete frame,
// magic through terminator, and returns the decoded message or an error.
type DecodeFunc func(wire.RawMessage) (bufr.Message, error)

// Messages reads a possibly compressed stream of framed BUFR messages and
// lazily yields each one decoded.
//
// The stream's container compression is sniffed and removed automatically;
// plain streams pass through. Framing and decoding errors are yielded once
// and end the sequence.
//
// Parameters:
//   - r: The input stream (file, network body, archive reader)
//   - decode: The section decoder applied to each framed message
//   - opts: Scanner options (see wire.WithMaxMessageSize, wire.WithLogger)
//
// Example:
//
//	for msg, err := range bufrobs.Messages(file, decode) {
//	    if err != nil {
//	        return err
//	    }
//	    // use msg
//	}
func Messages(r io.Reader, decode DecodeFunc, opts ...wire.ScannerOption) iter.Seq2[bufr.Message, error] {
	return func(yield func(bufr.Message, error) bool) {
		plain, _, err := compress.NewReader(r)
		if err != nil {
			yield(nil, err)

			return
		}
		sc, err := wire.NewScanner(plain, opts...)
		if err != nil {
			yield(nil, err)

			return
		}

		for raw, err := range sc.Messages() {
			if err != nil {
				yield(nil, err)

				return
			}
			msg, err := decode(raw)
			if err != nil {
				yield(nil, err)

				return
			}
			if !yield(msg, nil) {
				return
			}
		}
	}
}

// Extract flattens a message sequence into observation records with the
// requested columns.
//
// This wraps extract.NewStreamer and Stream in one call; a configuration
// error surfaces as the sequence's first and only element. Use the
// extract package directly to reuse a streamer, and with it the structure
// cache, across several streams.
//
// Parameters:
//   - msgs: The decoded message sequence, typically from Messages
//   - columns: The record columns to extract, in output order
//   - opts: Streamer options (see extract.WithFilters, extract.WithRequired,
//     extract.WithPrefilterHeaders, extract.WithCache)
//
// Example:
//
//	records := bufrobs.Extract(msgs, []string{"stationNumber", "airTemperature"},
//	    extract.WithFilters(map[string]filters.Filter{
//	        "stationNumber": filters.Range(890, 900),
//	    }),
//	)
func Extract(msgs iter.Seq2[bufr.Message, error], columns []string, opts ...extract.StreamOption) iter.Seq2[*extract.Record, error] {
	streamer, err := extract.NewStreamer(columns, opts...)
	if err != nil {
		return func(yield func(*extract.Record, error) bool) {
			yield(nil, err)
		}
	}

	return streamer.Stream(msgs)
}
