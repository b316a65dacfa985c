// Package dict provides typed access to loosely-typed string-keyed records.
//
// # Overview
//
// Dash documents are JSON objects. After encoding/json decodes them into
// map[string]any, every value is one of string, float64, bool, nil,
// map[string]any or []any. [Dict] wraps such a map and offers typed
// lookups that fail with one of three typed errors:
//
//   - [MissingKeyError]: the key is absent
//   - [WrongTypeError]: the key is present but its value has the wrong shape
//   - [InvalidValueError]: the value has the right shape but cannot be used
//
// This is the single place where dynamic values become static ones; code
// built on top of it works with concrete Go types only.
//
// # Type Names
//
// Errors describe values with JSON-level type names so messages read the
// same regardless of whether a record came from a file or was built in Go:
// "string", "number", "bool", "object", "array" and "null".
//
// # Usage
//
//	d := dict.Dict{"isVertical": "yes"}
//	_, err := d.Bool("isVertical")
//	var wt *dict.WrongTypeError
//	if errors.As(err, &wt) {
//	    fmt.Println(wt.Key, wt.Expected, wt.Actual) // isVertical bool string
//	}
package dict
