package types

import (
	"math/big"
	"reflect"
	"regexp"
	"time"

	"github.com/dmitrymomot/assertkit/pkg/typeof"
)

// Kind is the variant of a Descriptor.
type Kind uint8

const (
	// KindPrimitive matches values whose category equals the descriptor's tag.
	KindPrimitive Kind = iota + 1
	// KindConstructor matches instances of a Go type.
	KindConstructor
	// KindSentinel matches one of the special values undefined, null or NaN.
	KindSentinel
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindConstructor:
		return "constructor"
	case KindSentinel:
		return "sentinel"
	default:
		return "unknown"
	}
}

// Descriptor is one entry of an allowed set. The zero value matches nothing.
type Descriptor struct {
	kind Kind
	// id identifies the descriptor for de-duplication.
	id   string
	name string
	// tag is the primitive category a primitive descriptor stands for, or the
	// category a built-in wrapper constructor contributes.
	tag   typeof.Category
	match func(v any) bool
}

// Kind returns the descriptor variant.
func (d Descriptor) Kind() Kind { return d.kind }

// Name returns the display name used in expectation lists.
func (d Descriptor) Name() string { return d.name }

// Tag returns the primitive category the descriptor contributes, if any.
func (d Descriptor) Tag() typeof.Category { return d.tag }

// Matches applies the descriptor's own matching rule to v. It ignores the
// precedence rules of Resolve.
func (d Descriptor) Matches(v any) bool {
	switch d.kind {
	case KindPrimitive:
		return typeof.Of(v) == d.tag
	case KindConstructor:
		if typeof.IsNull(v) {
			return false
		}
		if d.tag != "" && typeof.Of(v) == d.tag {
			return true
		}
		return d.match != nil && d.match(v)
	case KindSentinel:
		return d.match != nil && d.match(v)
	}
	return false
}

// Primitive returns a descriptor that matches values of category c.
func Primitive(c typeof.Category) Descriptor {
	return Descriptor{
		kind: KindPrimitive,
		id:   "primitive:" + string(c),
		name: string(c),
		tag:  c,
	}
}

// Of returns a constructor descriptor matching values assignable to T.
// When T is an interface every implementation matches.
func Of[T any]() Descriptor {
	return Named[T](typeof.NameOf(reflect.TypeFor[T]()))
}

// Named is Of with an explicit display name.
func Named[T any](name string) Descriptor {
	t := reflect.TypeFor[T]()
	if name == "" {
		name = t.String()
	}
	return Descriptor{
		kind: KindConstructor,
		id:   "type:" + t.String(),
		name: name,
		match: func(v any) bool {
			_, ok := v.(T)
			return ok
		},
	}
}

// Func returns a constructor descriptor with a custom instance check.
// The id must be unique among descriptors that should not be de-duplicated.
func Func(id, name string, match func(v any) bool) Descriptor {
	return Descriptor{
		kind:  KindConstructor,
		id:    "func:" + id,
		name:  name,
		match: match,
	}
}

func sentinel(name string, match func(v any) bool) Descriptor {
	return Descriptor{
		kind:  KindSentinel,
		id:    "sentinel:" + name,
		name:  name,
		match: match,
	}
}

// Sentinels.
var (
	Undefined = sentinel("undefined", typeof.IsMissing)
	Null      = sentinel("null", typeof.IsNull)
	NaN       = sentinel("NaN", typeof.IsNaN)
)

// Built-in wrapper constructors. Besides their instance check each of them
// contributes a primitive tag, so String accepts both "abc" and a *string.
var (
	String  = wrapper(typeof.String, "String", isBoxed(typeof.String))
	Number  = wrapper(typeof.Number, "Number", isBoxed(typeof.Number))
	Boolean = wrapper(typeof.Boolean, "Boolean", isBoxed(typeof.Boolean))
	BigInt  = wrapper(typeof.BigInt, "BigInt", func(v any) bool {
		switch v.(type) {
		case *big.Int, big.Int:
			return true
		}
		return false
	})
	Symbol = wrapper(typeof.Symbol, "Symbol", func(v any) bool {
		_, ok := v.(typeof.SymbolValue)
		return ok
	})
)

// Common Go types.
var (
	Array    = Func("array", "Array", typeof.IsArray)
	Map      = Func("map", "Map", isMap)
	Function = Func("function", "Function", func(v any) bool { return typeof.Of(v) == typeof.Function })
	Time     = Of[time.Time]()
	Regexp   = Of[*regexp.Regexp]()
	Error    = Named[error]("Error")
)

// wrappers is the static table of built-in wrapper constructors keyed by the
// primitive category they box.
var wrappers = map[typeof.Category]Descriptor{
	typeof.String:  String,
	typeof.Number:  Number,
	typeof.Boolean: Boolean,
	typeof.BigInt:  BigInt,
	typeof.Symbol:  Symbol,
}

// Wrapper returns the built-in wrapper constructor for a primitive category.
func Wrapper(c typeof.Category) (Descriptor, bool) {
	d, ok := wrappers[c]
	return d, ok
}

func wrapper(tag typeof.Category, name string, match func(v any) bool) Descriptor {
	return Descriptor{
		kind:  KindConstructor,
		id:    "wrapper:" + string(tag),
		name:  name,
		tag:   tag,
		match: match,
	}
}

func isBoxed(c typeof.Category) func(v any) bool {
	return func(v any) bool {
		got, ok := typeof.BoxedCategory(v)
		return ok && got == c
	}
}

func isMap(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Map
}
