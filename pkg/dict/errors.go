package dict

import "fmt"

// MissingKeyError reports a required key that is absent from a record.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing key %q", e.Key)
}

// WrongTypeError reports a key whose value cannot be converted to the
// requested type. Expected and Actual are JSON-level type names.
type WrongTypeError struct {
	Key      string
	Expected string
	Actual   string
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("key %q: expected %s, got %s", e.Key, e.Expected, e.Actual)
}

// InvalidValueError reports a value of the right shape that is still unusable,
// such as a string that is not a URL.
type InvalidValueError struct {
	Key     string
	Message string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("key %q: %s", e.Key, e.Message)
}
