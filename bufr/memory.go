package bufr

import (
	"fmt"
	"iter"
	"strings"

	"github.com/meteogo/bufrobs/errs"
)

// DecodedMessage is an in-memory Message backed by an ordered key/value
// store.
//
// Add defines the decoded key stream in call order; attribute keys (those
// containing "->") participate in Get but are skipped by Keys, matching a
// decoder that suppresses key attributes during iteration. Values written
// through Set for keys outside the stream are kept as control settings and
// stay invisible to Keys as well.
type DecodedMessage struct {
	order  []string
	values map[string]any
	flags  map[string]any
}

// NewDecodedMessage creates an empty in-memory message.
func NewDecodedMessage() *DecodedMessage {
	return &DecodedMessage{values: make(map[string]any)}
}

// Add appends a key with its value to the message and returns the message for
// chaining. Adding a key that already exists replaces its value in place.
func (m *DecodedMessage) Add(key string, value any) *DecodedMessage {
	if _, ok := m.values[key]; !ok {
		m.order = append(m.order, key)
	}
	m.values[key] = value

	return m
}

// Keys yields the data keys in insertion order, skipping attribute keys.
func (m *DecodedMessage) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, key := range m.order {
			if strings.Contains(key, AttrSep) {
				continue
			}
			if !yield(key) {
				return
			}
		}
	}
}

// Get returns the value stored under key, falling back to control settings
// written through Set.
func (m *DecodedMessage) Get(key string) (any, error) {
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	if v, ok := m.flags[key]; ok {
		return v, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrKeyNotFound, key)
}

// Set replaces the value of an existing key, or records a control setting
// when the key is not part of the message.
func (m *DecodedMessage) Set(key string, value any) error {
	if _, ok := m.values[key]; ok {
		m.values[key] = value
		return nil
	}
	if m.flags == nil {
		m.flags = make(map[string]any)
	}
	m.flags[key] = value

	return nil
}

// Len returns the number of keys in the message, attribute keys included.
func (m *DecodedMessage) Len() int {
	return len(m.order)
}
