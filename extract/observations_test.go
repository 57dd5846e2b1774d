package extract

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meteogo/bufrobs/bufr"
	"github.com/meteogo/bufrobs/errs"
	"github.com/meteogo/bufrobs/filters"
	"github.com/meteogo/bufrobs/structure"
)

// profileMessage is a two level sounding: pressure is a coordinate, so each
// new pressure closes the previous observation.
func profileMessage() *bufr.DecodedMessage {
	return bufr.NewDecodedMessage().
		Add("#1#pressure", int64(100)).
		Add("#1#temperature", 300.0).
		Add("#2#pressure", int64(90)).
		Add("#2#temperature", bufr.MissingDouble).
		Add("#1#pressure->code", "007004").
		Add("#2#pressure->code", "007004")
}

// soundingMessage nests pressure levels under a latitude coordinate, with a
// trailing observation that has no pressure at all.
func soundingMessage() *bufr.DecodedMessage {
	return bufr.NewDecodedMessage().
		Add("#1#latitude", int64(42)).
		Add("#1#pressure", int64(100)).
		Add("#1#temperature", 300.0).
		Add("#2#pressure", int64(90)).
		Add("#2#temperature", bufr.MissingDouble).
		Add("#2#latitude", int64(43)).
		Add("#3#temperature", 290.0).
		Add("#1#latitude->code", "005002").
		Add("#1#pressure->code", "007004").
		Add("#2#latitude->code", "005002").
		Add("#2#pressure->code", "007004")
}

func walkKeys(msg bufr.Message) []structure.Key {
	return slices.Collect(structure.FilteredKeys(msg, nil))
}

func collectObservations(t *testing.T, msg bufr.Message, keys []structure.Key, fs map[string]filters.Filter, base *Record) []map[string]any {
	t.Helper()
	var got []map[string]any
	for rec, err := range Observations(msg, keys, fs, base) {
		require.NoError(t, err)
		got = append(got, rec.Map())
	}

	return got
}

func TestObservations_NoFilters(t *testing.T) {
	msg := profileMessage()
	got := collectObservations(t, msg, walkKeys(msg), nil, nil)

	require.Equal(t, []map[string]any{
		{"pressure": int64(100), "temperature": 300.0},
		{"pressure": int64(90), "temperature": nil},
	}, got)
}

func TestObservations_RangeFilter(t *testing.T) {
	msg := profileMessage()
	keys := walkKeys(msg)

	t.Run("upper bound keeps both levels", func(t *testing.T) {
		fs := map[string]filters.Filter{"pressure": filters.Range(nil, 100)}
		got := collectObservations(t, msg, keys, fs, nil)
		require.Equal(t, []map[string]any{
			{"pressure": int64(100), "temperature": 300.0},
			{"pressure": int64(90), "temperature": nil},
		}, got)
	})

	t.Run("both bounds drop the lower level", func(t *testing.T) {
		fs := map[string]filters.Filter{"pressure": filters.Range(95, 100)}
		got := collectObservations(t, msg, keys, fs, nil)
		require.Equal(t, []map[string]any{
			{"pressure": int64(100), "temperature": 300.0},
		}, got)
	})
}

func TestObservations_NestedCoordinates(t *testing.T) {
	msg := soundingMessage()
	keys := walkKeys(msg)

	t.Run("pressure filter inherits the latitude context", func(t *testing.T) {
		fs := map[string]filters.Filter{"pressure": filters.Range(nil, 100)}
		got := collectObservations(t, msg, keys, fs, nil)
		require.Equal(t, []map[string]any{
			{"latitude": int64(42), "pressure": int64(100), "temperature": 300.0},
			{"latitude": int64(42), "pressure": int64(90), "temperature": nil},
		}, got)
	})

	t.Run("latitude filter emits the pressureless tail", func(t *testing.T) {
		fs := map[string]filters.Filter{"latitude": filters.Range(nil, nil)}
		got := collectObservations(t, msg, keys, fs, nil)
		require.Equal(t, []map[string]any{
			{"latitude": int64(42), "pressure": int64(100), "temperature": 300.0},
			{"latitude": int64(42), "pressure": int64(90), "temperature": nil},
			{"latitude": int64(43), "temperature": 290.0},
		}, got)
	})
}

func TestObservations_FailedFilterSkipsSubtree(t *testing.T) {
	msg := soundingMessage()
	keys := walkKeys(msg)

	// Only the first pressure level matches; the second level's subtree is
	// skipped and the walk recovers at the latitude above it.
	fs := map[string]filters.Filter{"pressure": filters.Equal(100)}
	got := collectObservations(t, msg, keys, fs, nil)
	require.Equal(t, []map[string]any{
		{"latitude": int64(42), "pressure": int64(100), "temperature": 300.0},
	}, got)
}

func TestObservations_FilterRecoversAtSameLevel(t *testing.T) {
	msg := soundingMessage()
	keys := walkKeys(msg)

	// The first pressure fails, the second matches: the walk resumes and
	// emits the second level only.
	fs := map[string]filters.Filter{
		"latitude": filters.Range(nil, nil),
		"pressure": filters.Equal(90),
	}
	got := collectObservations(t, msg, keys, fs, nil)
	require.Equal(t, []map[string]any{
		{"latitude": int64(42), "pressure": int64(90), "temperature": nil},
	}, got)
}

func TestObservations_BaseRecord(t *testing.T) {
	msg := profileMessage()
	base := NewRecord()
	base.Set("count", int64(7))

	got := collectObservations(t, msg, walkKeys(msg), nil, base)
	require.Equal(t, []map[string]any{
		{"count": int64(7), "pressure": int64(100), "temperature": 300.0},
		{"count": int64(7), "pressure": int64(90), "temperature": nil},
	}, got)

	// The walk never mutates the base itself.
	require.Equal(t, map[string]any{"count": int64(7)}, base.Map())
}

func TestObservations_CompressedSubsets(t *testing.T) {
	msg := bufr.NewDecodedMessage().
		Add("compressedData", int64(1)).
		Add("numberOfSubsets", int64(3)).
		Add("#1#stationNumber", []int64{894, 895, 896}).
		Add("#1#stationNumber->code", "001002").
		Add("#1#airTemperature", []float64{272.0, bufr.MissingDouble, 279.4})

	keys := slices.Collect(structure.FilteredKeys(msg, []string{"stationNumber", "airTemperature"}))
	got := collectObservations(t, msg, keys, nil, nil)

	require.Equal(t, []map[string]any{
		{"stationNumber": int64(894), "airTemperature": 272.0},
		{"stationNumber": int64(895), "airTemperature": nil},
		{"stationNumber": int64(896), "airTemperature": 279.4},
	}, got)
}

func TestObservations_CompressedFilterPerSubset(t *testing.T) {
	msg := bufr.NewDecodedMessage().
		Add("compressedData", int64(1)).
		Add("numberOfSubsets", int64(3)).
		Add("#1#stationNumber", []int64{894, 895, 896}).
		Add("#1#stationNumber->code", "001002").
		Add("#1#airTemperature", []float64{272.0, 275.0, 279.4})

	keys := slices.Collect(structure.FilteredKeys(msg, []string{"stationNumber", "airTemperature"}))
	fs := map[string]filters.Filter{"stationNumber": filters.In(894, 896)}
	got := collectObservations(t, msg, keys, fs, nil)

	require.Equal(t, []map[string]any{
		{"stationNumber": int64(894), "airTemperature": 272.0},
		{"stationNumber": int64(896), "airTemperature": 279.4},
	}, got)
}

func TestObservations_ShortArrayPassesThrough(t *testing.T) {
	// Arrays whose length differs from the subset count are not per-subset
	// values and stay whole.
	msg := bufr.NewDecodedMessage().
		Add("compressedData", int64(1)).
		Add("numberOfSubsets", int64(3)).
		Add("#1#stationNumber", []int64{894, 895, 896}).
		Add("#1#stationNumber->code", "001002").
		Add("#1#extendedDelayedDescriptorReplicationFactor", []int64{5, 5})

	keys := slices.Collect(structure.FilteredKeys(msg,
		[]string{"stationNumber", "extendedDelayedDescriptorReplicationFactor"}))
	got := collectObservations(t, msg, keys, nil, nil)

	require.Len(t, got, 3)
	for _, rec := range got {
		require.Equal(t, []int64{5, 5}, rec["extendedDelayedDescriptorReplicationFactor"])
	}
}

func TestObservations_SingleElementArrayUnwraps(t *testing.T) {
	msg := bufr.NewDecodedMessage().
		Add("#1#airTemperature", []float64{285.4})

	keys := walkKeys(msg)
	got := collectObservations(t, msg, keys, nil, nil)
	require.Equal(t, []map[string]any{{"airTemperature": 285.4}}, got)
}

type countingMessage struct {
	*bufr.DecodedMessage
	gets map[string]int
}

func (m *countingMessage) Get(key string) (any, error) {
	m.gets[key]++
	return m.DecodedMessage.Get(key)
}

func TestObservations_ValueFetchedOncePerMessage(t *testing.T) {
	inner := bufr.NewDecodedMessage().
		Add("compressedData", int64(1)).
		Add("numberOfSubsets", int64(3)).
		Add("#1#stationNumber", []int64{894, 895, 896}).
		Add("#1#stationNumber->code", "001002").
		Add("#1#airTemperature", []float64{272.0, 275.0, 279.4})
	keys := slices.Collect(structure.FilteredKeys(inner, []string{"stationNumber", "airTemperature"}))

	msg := &countingMessage{DecodedMessage: inner, gets: make(map[string]int)}
	for rec, err := range Observations(msg, keys, nil, nil) {
		require.NoError(t, err)
		require.NotNil(t, rec)
	}

	// Three subsets, one decoder read per key.
	require.Equal(t, 1, msg.gets["#1#stationNumber"])
	require.Equal(t, 1, msg.gets["#1#airTemperature"])
}

func TestObservations_DecoderError(t *testing.T) {
	msg := profileMessage()
	keys := append(walkKeys(msg), structure.Key{Level: 0, Rank: 1, Name: "ghost"})

	var recs int
	var lastErr error
	for rec, err := range Observations(msg, keys, nil, nil) {
		if err != nil {
			lastErr = err
			break
		}
		_ = rec
		recs++
	}
	require.ErrorIs(t, lastErr, errs.ErrKeyNotFound)
	// Both closed observations are emitted before the fetch fails.
	require.Equal(t, 2, recs)
}

func TestObservations_EarlyStop(t *testing.T) {
	msg := profileMessage()
	var got []*Record
	for rec, err := range Observations(msg, walkKeys(msg), nil, nil) {
		require.NoError(t, err)
		got = append(got, rec)
		break
	}
	require.Len(t, got, 1)
	require.Equal(t, map[string]any{"pressure": int64(100), "temperature": 300.0}, got[0].Map())
}
