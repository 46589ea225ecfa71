package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedValue is returned when a document holds something other than
// a boolean or an integer.
var ErrUnsupportedValue = errors.New("unsupported settings value")

// Kind identifies which scalar a Value carries.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	default:
		return "invalid"
	}
}

// Value is a single scalar setting. The zero Value is invalid.
// Values are comparable with ==.
type Value struct {
	kind Kind
	b    bool
	n    int
}

// Bool returns a boolean Value
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns an integer Value
func Int(n int) Value {
	return Value{kind: KindInt, n: n}
}

// Kind returns the kind of the value
func (v Value) Kind() Kind {
	return v.kind
}

// IsValid reports whether v holds a scalar
func (v Value) IsValid() bool {
	return v.kind != KindInvalid
}

// AsBool returns the boolean and whether v is a boolean
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns the integer and whether v is an integer
func (v Value) AsInt() (int, bool) {
	return v.n, v.kind == KindInt
}

// String renders the value the way it appears in JSON
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.Itoa(v.n)
	default:
		return "<invalid>"
	}
}

// MarshalJSON implements json.Marshaler
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("marshal: %w", ErrUnsupportedValue)
	}
	return []byte(v.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler.
// Only true, false and integral numbers are accepted.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true":
		*v = Bool(true)
		return nil
	case "false":
		*v = Bool(false)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	num, ok := raw.(json.Number)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedValue, data)
	}
	n, err := strconv.Atoi(num.String())
	if err != nil {
		return fmt.Errorf("%w: %s is not an integer", ErrUnsupportedValue, num)
	}
	*v = Int(n)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (v Value) MarshalYAML() (interface{}, error) {
	switch v.kind {
	case KindBool:
		return v.b, nil
	case KindInt:
		return v.n, nil
	default:
		return nil, fmt.Errorf("marshal: %w", ErrUnsupportedValue)
	}
}

// ParseValue parses command-line text into a Value.
// "true"/"false" become booleans, anything else must be an integer.
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q", ErrUnsupportedValue, s)
	}
	return Int(n), nil
}
