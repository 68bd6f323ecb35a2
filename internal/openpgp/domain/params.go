package domain

import "fmt"

// Params carries the request parameters of one engine operation. Values
// arrive as decoded JSON, so numbers show up as float64 and booleans as
// bool; the getters also tolerate native Go ints for programmatic callers.
type Params map[string]any

func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// String returns the named parameter as a string. The second return value
// reports presence; a present value of the wrong type is an error.
func (p Params) String(name string) (string, bool, error) {
	v, ok := p[name]
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", true, fmt.Errorf("parameter %q must be a string", name)
	}
	return s, true, nil
}

func (p Params) Bool(name string) (bool, bool, error) {
	v, ok := p[name]
	if !ok {
		return false, false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, true, fmt.Errorf("parameter %q must be a boolean", name)
	}
	return b, true, nil
}

// Seconds returns the named parameter as a whole number of seconds.
func (p Params) Seconds(name string) (int64, bool, error) {
	v, ok := p[name]
	if !ok {
		return 0, false, nil
	}
	switch n := v.(type) {
	case float64:
		if n != float64(int64(n)) {
			return 0, true, fmt.Errorf("parameter %q must be a whole number of seconds", name)
		}
		return int64(n), true, nil
	case int:
		return int64(n), true, nil
	case int64:
		return n, true, nil
	default:
		return 0, true, fmt.Errorf("parameter %q must be a number of seconds", name)
	}
}
