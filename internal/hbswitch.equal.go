// Package internal implements the value equality used by the case dispatch.
// It is independent of the host engine so the comparison rules can be
// tested in isolation.
package internal

import (
	"reflect"
)

// Equal reports whether a case label equals the switch value.
//
// Values of numeric kind compare numerically regardless of the concrete Go
// type: the host engine parses template number literals to int, while data
// decoded from JSON arrives as float64. Values of string kind, including
// named string types like the host's SafeString, compare by content.
// Mixed string/number pairs never match. Everything else falls back to
// deep equality.
func Equal(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if fa, ok := asFloat(a); ok {
		fb, ok := asFloat(b)
		return ok && fa == fb
	}

	if sa, ok := asString(a); ok {
		sb, ok := asString(b)
		return ok && sa == sb
	}

	return reflect.DeepEqual(a, b)
}

// asFloat converts any numeric-kinded value to float64.
func asFloat(v interface{}) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// asString unwraps any string-kinded value, named types included.
func asString(v interface{}) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
