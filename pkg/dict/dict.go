package dict

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"
	"unicode"
)

// JSON-level type names used in [WrongTypeError].
const (
	TypeString = "string"
	TypeNumber = "number"
	TypeBool   = "bool"
	TypeObject = "object"
	TypeArray  = "array"
	TypeNull   = "null"
)

// Dict is a string-keyed record holding JSON-compatible values.
type Dict map[string]any

// Has reports whether key is present, even if its value is null.
func (d Dict) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Clone returns a shallow copy of d. Nested records are shared.
func (d Dict) Clone() Dict {
	out := make(Dict, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// value returns the raw value for key or a MissingKeyError.
func (d Dict) value(key string) (any, error) {
	v, ok := d[key]
	if !ok {
		return nil, &MissingKeyError{Key: key}
	}
	return v, nil
}

// String returns the string stored under key.
func (d Dict) String(key string) (string, error) {
	v, err := d.value(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", wrongType(key, TypeString, v)
	}
	return s, nil
}

// Float returns the number stored under key.
func (d Dict) Float(key string) (float64, error) {
	v, err := d.value(key)
	if err != nil {
		return 0, err
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, wrongType(key, TypeNumber, v)
	}
	return f, nil
}

// FloatOr returns the number stored under key, or def when key is absent.
// A present value of the wrong type is still an error.
func (d Dict) FloatOr(key string, def float64) (float64, error) {
	if !d.Has(key) {
		return def, nil
	}
	return d.Float(key)
}

// Bool returns the boolean stored under key.
func (d Dict) Bool(key string) (bool, error) {
	v, err := d.value(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, wrongType(key, TypeBool, v)
	}
	return b, nil
}

// Dict returns the nested record stored under key.
func (d Dict) Dict(key string) (Dict, error) {
	v, err := d.value(key)
	if err != nil {
		return nil, err
	}
	sub, ok := toDict(v)
	if !ok {
		return nil, wrongType(key, TypeObject, v)
	}
	return sub, nil
}

// Dicts returns the list of records stored under key. Every element must be
// an object; the first element that is not fails the whole lookup.
func (d Dict) Dicts(key string) ([]Dict, error) {
	v, err := d.value(key)
	if err != nil {
		return nil, err
	}
	switch list := v.(type) {
	case []Dict:
		return list, nil
	case []map[string]any:
		out := make([]Dict, len(list))
		for i, m := range list {
			out[i] = Dict(m)
		}
		return out, nil
	case []any:
		out := make([]Dict, len(list))
		for i, elem := range list {
			sub, ok := toDict(elem)
			if !ok {
				return nil, &WrongTypeError{
					Key:      key,
					Expected: "array of objects",
					Actual:   fmt.Sprintf("array with %s at index %d", TypeName(elem), i),
				}
			}
			out[i] = sub
		}
		return out, nil
	default:
		return nil, wrongType(key, TypeArray, v)
	}
}

// Duration returns the non-negative number of seconds stored under key as a
// time.Duration, rounded to the nearest nanosecond.
func (d Dict) Duration(key string) (time.Duration, error) {
	f, err := d.Float(key)
	if err != nil {
		return 0, err
	}
	return Seconds(key, f)
}

// URL returns the URL stored as a string under key. The string must be
// non-empty, contain no whitespace and parse with net/url.
func (d Dict) URL(key string) (*url.URL, error) {
	s, err := d.String(key)
	if err != nil {
		return nil, err
	}
	return ParseURL(key, s)
}

// Seconds converts a number of seconds into a time.Duration, reporting
// negative or unrepresentable values as an InvalidValueError for key.
func Seconds(key string, f float64) (time.Duration, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &InvalidValueError{Key: key, Message: fmt.Sprintf("%v is not a finite number of seconds", f)}
	}
	if f < 0 {
		return 0, &InvalidValueError{Key: key, Message: fmt.Sprintf("duration %v must not be negative", f)}
	}
	ns := math.Round(f * float64(time.Second))
	if ns >= math.MaxInt64 {
		return 0, &InvalidValueError{Key: key, Message: fmt.Sprintf("duration %v is too large", f)}
	}
	return time.Duration(ns), nil
}

// ParseURL parses s with the same rules as [Dict.URL], naming key in errors.
// Relative references such as "google.com" are accepted.
func ParseURL(key, s string) (*url.URL, error) {
	invalid := &InvalidValueError{Key: key, Message: fmt.Sprintf("unable to create url from %q", s)}
	if s == "" || strings.ContainsFunc(s, unicode.IsSpace) {
		return nil, invalid
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, invalid
	}
	return u, nil
}

// TypeName returns the JSON-level type name of v.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return TypeNull
	case string:
		return TypeString
	case bool:
		return TypeBool
	case map[string]any, Dict:
		return TypeObject
	case []any, []Dict, []map[string]any:
		return TypeArray
	}
	if _, ok := toFloat(v); ok {
		return TypeNumber
	}
	return fmt.Sprintf("%T", v)
}

func wrongType(key, expected string, v any) error {
	return &WrongTypeError{Key: key, Expected: expected, Actual: TypeName(v)}
}

func toDict(v any) (Dict, bool) {
	switch m := v.(type) {
	case Dict:
		return m, true
	case map[string]any:
		return Dict(m), true
	}
	return nil, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
