package assert

import "math"

// NumberPositive asserts that a value is a number greater than zero.
func NumberPositive(value any, opts ...Option) (float64, error) {
	c := newCall(opts)
	n, err := numberValue(value, c)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, newError(KindRange, c, c.apply(value), "validation.positive", "Expected a positive number.", nil)
	}
	return n, nil
}

// NumberNonNegative asserts that a value is a number that is zero or greater.
func NumberNonNegative(value any, opts ...Option) (float64, error) {
	c := newCall(opts)
	n, err := numberValue(value, c)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, newError(KindRange, c, c.apply(value), "validation.non_negative", "Expected zero or greater.", nil)
	}
	return n, nil
}

// Integer asserts that a value is a finite number without a fractional part.
func Integer(value any, opts ...Option) (float64, error) {
	return integerValue(value, newCall(opts))
}

func integerValue(value any, c call) (float64, error) {
	n, err := numberValue(value, c)
	if err != nil {
		return 0, err
	}
	if math.IsInf(n, 0) || n != math.Trunc(n) {
		return 0, typeError(c, c.apply(value), "an integer")
	}
	return n, nil
}

// IntegerPositive asserts that a value is an integer of one or more.
func IntegerPositive(value any, opts ...Option) (float64, error) {
	c := newCall(opts)
	n, err := integerValue(value, c)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, newError(KindRange, c, c.apply(value), "validation.positive_integer", "Expected a positive integer.", nil)
	}
	return n, nil
}

// IntegerNonNegative asserts that a value is an integer that is zero or greater.
func IntegerNonNegative(value any, opts ...Option) (float64, error) {
	c := newCall(opts)
	n, err := integerValue(value, c)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, newError(KindRange, c, c.apply(value), "validation.non_negative", "Expected zero or greater.", nil)
	}
	return n, nil
}
