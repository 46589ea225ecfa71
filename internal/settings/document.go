package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrNotObject is returned when a settings file is not a flat JSON object.
var ErrNotObject = errors.New("settings document must be a JSON object")

// Document is an ordered mapping from setting key to scalar value.
// Key order is kept as read so that written files diff cleanly; it has no
// other meaning and is ignored by Equal.
type Document struct {
	values *orderedmap.OrderedMap[string, Value]
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{values: orderedmap.New[string, Value]()}
}

// ParseDocument parses a flat JSON object of booleans and integers
func ParseDocument(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("invalid JSON")
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrNotObject
	}

	doc := NewDocument()
	if err := doc.values.UnmarshalJSON(trimmed); err != nil {
		return nil, err
	}
	return doc, nil
}

// Get returns the value stored under key
func (d *Document) Get(key string) (Value, bool) {
	return d.values.Get(key)
}

// Has reports whether key is present
func (d *Document) Has(key string) bool {
	_, ok := d.values.Get(key)
	return ok
}

// Set stores value under key. New keys are appended at the end.
func (d *Document) Set(key string, value Value) {
	d.values.Set(key, value)
}

// Len returns the number of keys
func (d *Document) Len() int {
	return d.values.Len()
}

// Keys returns the keys in document order
func (d *Document) Keys() []string {
	keys := make([]string, 0, d.values.Len())
	for pair := d.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Range calls fn for each entry in order until fn returns false
func (d *Document) Range(fn func(key string, value Value) bool) {
	for pair := d.values.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Clone returns an independent copy with the same order
func (d *Document) Clone() *Document {
	c := NewDocument()
	d.Range(func(key string, value Value) bool {
		c.Set(key, value)
		return true
	})
	return c
}

// Equal reports whether both documents hold the same keys with the same
// values, regardless of order.
func (d *Document) Equal(other *Document) bool {
	if other == nil || d.Len() != other.Len() {
		return false
	}
	equal := true
	d.Range(func(key string, value Value) bool {
		if v, ok := other.Get(key); !ok || v != value {
			equal = false
		}
		return equal
	})
	return equal
}

// Encode renders the document as indented JSON in key order
func (d *Document) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return append(data, '\n'), nil
}

// MarshalJSON implements json.Marshaler
func (d *Document) MarshalJSON() ([]byte, error) {
	return d.values.MarshalJSON()
}

// MarshalYAML implements yaml.Marshaler
func (d *Document) MarshalYAML() (interface{}, error) {
	return d.values.MarshalYAML()
}
