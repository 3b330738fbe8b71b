package assert

import (
	"reflect"

	"github.com/dmitrymomot/assertkit/pkg/humanize"
	"github.com/dmitrymomot/assertkit/pkg/typeof"
)

// Value asserts that a value is present. Null and NaN are present values; only
// untyped nil is missing. The value is returned unchanged.
func Value(value any, opts ...Option) (any, error) {
	return require(value, newCall(opts))
}

func require(value any, c call) (any, error) {
	value = c.apply(value)
	if typeof.IsMissing(value) {
		return nil, newError(KindRequired, c, value, "validation.required", "A value is required.", nil)
	}
	return value, nil
}

// ValueOneOf asserts that a value is present and equal to one of allowed.
// Equality treats NaN as equal to NaN, compares numbers by value across Go
// numeric types and compares slices, maps and pointers by identity.
func ValueOneOf[T any](value any, allowed []T, opts ...Option) (any, error) {
	c := newCall(opts)
	value, err := require(value, c)
	if err != nil {
		return nil, err
	}

	for _, a := range allowed {
		if sameValue(value, a) {
			return value, nil
		}
	}

	expected := humanize.Values(allowed, humanize.Or)
	return nil, newError(KindRange, c, value, "validation.in_list", "Expected "+expected+".",
		map[string]any{"allowed_values": allowed, "expected": expected},
	)
}

// sameValue implements SameValueZero equality for dynamic values.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if typeof.IsNaN(a) || typeof.IsNaN(b) {
		return typeof.IsNaN(a) && typeof.IsNaN(b)
	}
	if typeof.Of(a) == typeof.Number && typeof.Of(b) == typeof.Number {
		return numberEqual(reflect.ValueOf(a), reflect.ValueOf(b))
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Slice, reflect.Map:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Func:
		return false
	}
	if !ta.Comparable() {
		return false
	}
	// A comparable struct can still hold an uncomparable value in an interface field.
	defer func() { _ = recover() }()
	return a == b
}

func numberEqual(a, b reflect.Value) bool {
	switch {
	case isInt(a) && isInt(b):
		return a.Int() == b.Int()
	case isUint(a) && isUint(b):
		return a.Uint() == b.Uint()
	}
	return toFloat(a) == toFloat(b)
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v):
		return float64(v.Int())
	case isUint(v):
		return float64(v.Uint())
	}
	return v.Float()
}
