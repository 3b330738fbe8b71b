package assert

import (
	"reflect"

	"github.com/dmitrymomot/assertkit/pkg/typeof"
	"github.com/dmitrymomot/assertkit/pkg/types"
)

// Type asserts that a value matches the descriptor. See TypeOneOf.
func Type(value any, descriptor types.Descriptor, opts ...Option) (any, error) {
	return TypeOneOf(value, []types.Descriptor{descriptor}, opts...)
}

// TypeOneOf asserts that a value matches at least one of the allowed
// descriptors and returns it unchanged.
//
// A missing value is replaced by the default first. Without a default a
// missing value only passes when types.Undefined is allowed.
func TypeOneOf(value any, allowed []types.Descriptor, opts ...Option) (any, error) {
	return resolve(value, allowed, newCall(opts))
}

func resolve(value any, allowed []types.Descriptor, c call) (any, error) {
	value = c.apply(value)

	res := types.Resolve(value, allowed)
	if !res.OK {
		return nil, typeError(c, value, res.Expected)
	}
	return value, nil
}

func typeError(c call, value any, expected string) *ValidationError {
	return newError(KindType, c, value, "validation.type", "Expected "+expected+".",
		map[string]any{"expected": expected},
	)
}

// Descriptors for the single-category validators. Array uses a lowercase name
// so the message reads "an array" rather than naming the constructor.
var (
	stringType   = []types.Descriptor{types.String}
	numberType   = []types.Descriptor{types.Number}
	booleanType  = []types.Descriptor{types.Boolean}
	objectType   = []types.Descriptor{types.Primitive(typeof.Object)}
	functionType = []types.Descriptor{types.Primitive(typeof.Function)}
	arrayType    = []types.Descriptor{types.Func("array-category", "array", typeof.IsArray)}
)

// category runs the presence check and then the engine with one descriptor.
func category(value any, allowed []types.Descriptor, c call) (any, error) {
	value, err := require(value, c)
	if err != nil {
		return nil, err
	}
	return resolve(value, allowed, c)
}

// String asserts that a value is a string (empty strings included). Named
// string types and boxed *string values are accepted and returned as their
// underlying string.
func String(value any, opts ...Option) (string, error) {
	return stringValue(value, newCall(opts))
}

func stringValue(value any, c call) (string, error) {
	v, err := category(value, stringType, c)
	if err != nil {
		return "", err
	}
	if inner, ok := typeof.Unbox(v); ok {
		v = inner
	}
	return reflect.ValueOf(v).String(), nil
}

// Number asserts that a value is numeric: any int, uint or float kind,
// finite or infinite, but not NaN. The value is returned as a float64.
func Number(value any, opts ...Option) (float64, error) {
	return numberValue(value, newCall(opts))
}

func numberValue(value any, c call) (float64, error) {
	v, err := category(value, numberType, c)
	if err != nil {
		return 0, err
	}
	if inner, ok := typeof.Unbox(v); ok {
		v = inner
	}
	if typeof.IsNaN(v) {
		return 0, typeError(c, v, "a number")
	}
	return toFloat(reflect.ValueOf(v)), nil
}

// Boolean asserts that a value is exactly true or false.
func Boolean(value any, opts ...Option) (bool, error) {
	c := newCall(opts)
	v, err := category(value, booleanType, c)
	if err != nil {
		return false, err
	}
	if inner, ok := typeof.Unbox(v); ok {
		v = inner
	}
	return reflect.ValueOf(v).Bool(), nil
}

// Object asserts that a value is an object (structs, maps, slices, pointers),
// excluding null.
func Object(value any, opts ...Option) (any, error) {
	c := newCall(opts)
	v, err := category(value, objectType, c)
	if err != nil {
		return nil, err
	}
	if typeof.IsNull(v) {
		return nil, typeError(c, v, "an object")
	}
	return v, nil
}

// Function asserts that a value is a non-nil func.
func Function(value any, opts ...Option) (any, error) {
	return category(value, functionType, newCall(opts))
}

// Array asserts that a value is a slice or an array (empty ones included).
func Array(value any, opts ...Option) (any, error) {
	return arrayValue(value, newCall(opts))
}

func arrayValue(value any, c call) (any, error) {
	return category(value, arrayType, c)
}
