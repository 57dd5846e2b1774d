package extract

import (
	"iter"
	"maps"
	"slices"
)

// Record is one observation: named values in insertion order.
//
// The order carries meaning during extraction, where entries are popped
// LIFO as the walk backtracks, and in the output, where it reflects the
// requested column order.
type Record struct {
	names  []string
	values map[string]any
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// Set stores value under name. An existing name keeps its position and gets
// the new value.
func (r *Record) Set(name string, value any) {
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = value
}

// Get returns the value stored under name.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Has reports whether name is present.
func (r *Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Len returns the number of entries.
func (r *Record) Len() int {
	return len(r.names)
}

// PopLast removes and returns the most recently inserted entry. It reports
// false on an empty record.
func (r *Record) PopLast() (string, any, bool) {
	if len(r.names) == 0 {
		return "", nil, false
	}
	name := r.names[len(r.names)-1]
	value := r.values[name]
	r.names = r.names[:len(r.names)-1]
	delete(r.values, name)

	return name, value, true
}

// All yields the entries in insertion order.
func (r *Record) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, name := range r.names {
			if !yield(name, r.values[name]) {
				return
			}
		}
	}
}

// Names returns the entry names in insertion order.
func (r *Record) Names() []string {
	return slices.Clone(r.names)
}

// Map returns the entries as a plain map.
func (r *Record) Map() map[string]any {
	return maps.Clone(r.values)
}

// Clone returns an independent copy of the record.
func (r *Record) Clone() *Record {
	return &Record{
		names:  slices.Clone(r.names),
		values: maps.Clone(r.values),
	}
}
