package assert

import (
	"math"

	"github.com/dmitrymomot/assertkit/pkg/typeof"
)

// ArrayNonEmpty asserts that a value is a slice or array with at least one item.
func ArrayNonEmpty(value any, opts ...Option) (any, error) {
	return arrayLength(value, 1, math.MaxInt, newCall(opts))
}

// ArrayMinLength asserts that a value is a slice or array with at least min items.
func ArrayMinLength(value any, min int, opts ...Option) (any, error) {
	return arrayLength(value, min, math.MaxInt, newCall(opts))
}

// ArrayMaxLength asserts that a value is a slice or array with no more than max items.
func ArrayMaxLength(value any, max int, opts ...Option) (any, error) {
	return arrayLength(value, 0, max, newCall(opts))
}

// ArrayLength asserts that a value is a slice or array with exactly n items.
func ArrayLength(value any, n int, opts ...Option) (any, error) {
	return arrayLength(value, n, n, newCall(opts))
}

// ArrayLengthBetween asserts that a value is a slice or array with min to max
// items, inclusive.
func ArrayLengthBetween(value any, min, max int, opts ...Option) (any, error) {
	return arrayLength(value, min, max, newCall(opts))
}

func arrayLength(value any, min, max int, c call) (any, error) {
	v, err := arrayValue(value, c)
	if err != nil {
		return nil, err
	}

	if err := checkLength(c, v, typeof.Len(v), min, max, arrayUnits); err != nil {
		return nil, err
	}
	return v, nil
}
