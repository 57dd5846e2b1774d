package extract

import (
	"iter"
	"maps"
	"slices"

	"github.com/meteogo/bufrobs/bufr"
	"github.com/meteogo/bufrobs/errs"
	"github.com/meteogo/bufrobs/filters"
	"github.com/meteogo/bufrobs/internal/options"
	"github.com/meteogo/bufrobs/structure"
)

type requiredMode uint8

const (
	requiredInvalid requiredMode = iota
	requiredAll
	requiredNone
	requiredNamed
)

// RequiredSpec selects which columns every emitted observation must carry.
// Build one with RequireAll, RequireNone or RequireColumns; the zero value
// is rejected by NewStreamer.
type RequiredSpec struct {
	mode  requiredMode
	names []string
}

// RequireAll makes every requested column required. This is the default.
func RequireAll() RequiredSpec {
	return RequiredSpec{mode: requiredAll}
}

// RequireNone drops the required-column check entirely.
func RequireNone() RequiredSpec {
	return RequiredSpec{mode: requiredNone}
}

// RequireColumns requires exactly the named columns.
func RequireColumns(names ...string) RequiredSpec {
	return RequiredSpec{mode: requiredNamed, names: slices.Clone(names)}
}

// Streamer drives the extraction pipeline over a message sequence: count
// filtering, optional header prefiltering, cached structure lookups, the
// observation walk, computed columns, projection and the required-column
// check.
//
// A Streamer is not safe for concurrent use, but may be reused for multiple
// Stream calls; the structure cache carries over.
type Streamer struct {
	columns   []string
	filters   map[string]filters.Filter
	required  RequiredSpec
	prefilter bool
	cache     *structure.Cache

	included    []string
	includedSet map[string]struct{}
	requiredSet map[string]struct{}
	countFilter filters.Filter
	maxCount    int64
	hasMaxCount bool
}

// StreamOption configures a Streamer.
type StreamOption = options.Option[*Streamer]

// WithFilters attaches value filters by column name. Filtered names that are
// not requested as columns still participate in the walk.
func WithFilters(fs map[string]filters.Filter) StreamOption {
	return options.NoError(func(s *Streamer) {
		maps.Copy(s.filters, fs)
	})
}

// WithRequired replaces the default RequireAll spec.
func WithRequired(spec RequiredSpec) StreamOption {
	return options.New(func(s *Streamer) error {
		if spec.mode == requiredInvalid {
			return errs.ErrInvalidRequiredColumns
		}
		s.required = spec

		return nil
	})
}

// WithPrefilterHeaders tests filtered keys that are readable before
// unpacking and skips messages that already fail, avoiding the cost of
// decoding their data section.
func WithPrefilterHeaders(enabled bool) StreamOption {
	return options.NoError(func(s *Streamer) {
		s.prefilter = enabled
	})
}

// WithCache shares a structure cache across streamers. A nil cache keeps
// the streamer's own.
func WithCache(cache *structure.Cache) StreamOption {
	return options.NoError(func(s *Streamer) {
		if cache != nil {
			s.cache = cache
		}
	})
}

// NewStreamer creates a streamer that extracts the given columns.
func NewStreamer(columns []string, opts ...StreamOption) (*Streamer, error) {
	if len(columns) == 0 {
		return nil, errs.ErrNoColumns
	}

	s := &Streamer{
		columns:  slices.Clone(columns),
		filters:  make(map[string]filters.Filter),
		required: RequireAll(),
		cache:    structure.NewCache(),
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}
	s.compile()

	return s, nil
}

// compile resolves the derived state once: the include set for the key
// walk, the required set, and the count cutoff.
func (s *Streamer) compile() {
	included := make(map[string]struct{}, len(s.columns)+len(s.filters))
	for name := range s.filters {
		included[name] = struct{}{}
	}
	for _, col := range s.columns {
		included[col] = struct{}{}
	}
	for _, col := range computedColumns {
		if _, ok := included[col.name]; ok {
			for _, dep := range col.deps {
				included[dep] = struct{}{}
			}
		}
	}
	s.includedSet = included
	s.included = slices.Sorted(maps.Keys(included))

	if f, ok := s.filters["count"]; ok {
		s.countFilter = f
		if max, ok := f.Max(); ok {
			s.maxCount = max
			s.hasMaxCount = true
		}
	}

	switch s.required.mode {
	case requiredAll:
		s.requiredSet = nameSet(s.columns)
	case requiredNamed:
		s.requiredSet = nameSet(s.required.names)
	default:
		s.requiredSet = make(map[string]struct{})
	}
}

// Stream lazily yields one projected record per observation extracted from
// messages. The message position, starting at 1, is matched against a
// "count" filter before anything else; once the position passes the
// filter's upper bound, the remaining messages are not read at all. An
// error from the source or a decoder ends the sequence.
func (s *Streamer) Stream(messages iter.Seq2[bufr.Message, error]) iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		var count int64
		for msg, err := range messages {
			if err != nil {
				yield(nil, err)
				return
			}
			count++

			if s.countFilter != nil && !s.countFilter.Match(count) {
				continue
			}
			if s.prefilter && s.failsHeaderFilters(msg) {
				continue
			}

			if err := prepare(msg); err != nil {
				yield(nil, err)
				return
			}

			keys := s.cache.FilteredKeys(msg, s.included)
			base := NewRecord()
			if _, ok := s.includedSet["count"]; ok {
				base.Set("count", count)
			}

			for rec, err := range Observations(msg, keys, s.filters, base) {
				if err != nil {
					yield(nil, err)
					return
				}
				applyComputed(rec, s.includedSet)
				out := s.project(rec)
				if !s.requiredSatisfied(out) {
					continue
				}
				if !yield(out, nil) {
					return
				}
			}

			if s.hasMaxCount && count >= s.maxCount {
				break
			}
		}
	}
}

// prepare switches the decoder into the mode the walk expects: data section
// unpacked, key attributes suppressed during iteration.
func prepare(msg bufr.Message) error {
	if err := msg.Set("skipExtraKeyAttributes", 1); err != nil {
		return err
	}

	return msg.Set("unpack", 1)
}

// failsHeaderFilters reports whether a filtered key readable before
// unpacking already rejects the message. Keys not present in the header
// section stay undecided.
func (s *Streamer) failsHeaderFilters(msg bufr.Message) bool {
	for name, f := range s.filters {
		v, err := msg.Get(name)
		if err != nil {
			continue
		}
		if !f.Match(v) {
			return true
		}
	}

	return false
}

// project keeps the requested columns, in request order.
func (s *Streamer) project(rec *Record) *Record {
	out := NewRecord()
	for _, col := range s.columns {
		if v, ok := rec.Get(col); ok {
			out.Set(col, v)
		}
	}

	return out
}

// requiredSatisfied checks presence only; an extracted nil satisfies a
// required column.
func (s *Streamer) requiredSatisfied(out *Record) bool {
	for name := range s.requiredSet {
		if !out.Has(name) {
			return false
		}
	}

	return true
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}

	return set
}
