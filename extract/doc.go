// Package extract turns decoded BUFR messages into flat observation
// records.
//
// The walk follows the leveled key stream produced by the structure
// package. Values accumulate in an insertion-ordered Record; whenever the
// stream backtracks to a level at or above the current one, the finished
// observation is emitted and the entries opened below that level are popped
// off, LIFO order, so siblings inherit the coordinate context they share
// with the previous observation. Filters prune subtrees as they fail:
// once a filtered value rejects, every deeper key is skipped until the walk
// returns to that level.
//
// # Streaming
//
// Streamer drives the whole pipeline over a message sequence: count
// filtering, optional header prefiltering, structure cache lookups, the
// observation walk, computed columns, projection and required-column
// checks. Results arrive lazily as an iterator:
//
//	s, err := extract.NewStreamer(
//	    []string{"latitude", "longitude", "airTemperature"},
//	    extract.WithFilters(map[string]filters.Filter{
//	        "blockNumber": filters.Equal(91),
//	    }),
//	)
//	if err != nil {
//	    return err
//	}
//	for rec, err := range s.Stream(messages) {
//	    if err != nil {
//	        return err
//	    }
//	    // consume rec
//	}
//
// Compressed messages hold one value array per key with one element per
// subset; the walk replays the key list once per subset and picks each
// subset's element, producing the same records an uncompressed encoding
// would.
//
// # Computed columns
//
// Three derived columns are available by name: "data_datetime" and
// "typical_datetime" compose UTC timestamps from their calendar component
// keys, and "WMO_station_id" combines blockNumber and stationNumber into
// the five digit station identifier. Requesting one pulls its component
// keys into the walk automatically.
package extract
