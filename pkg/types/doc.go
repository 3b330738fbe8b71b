// Package types implements type resolution for dynamic values: it decides
// whether a value belongs to a set of allowed types and describes that set in
// plain English when it does not.
//
// An allowed set is a slice of Descriptor values. Each descriptor is one of
// three variants:
//
//   - KindPrimitive: matches by runtime category (see package typeof).
//   - KindConstructor: matches instances of a Go type. The built-in wrappers
//     String, Number, Boolean, BigInt and Symbol also contribute their
//     primitive category, so String accepts "abc" as well as a *string.
//   - KindSentinel: matches one of the special values Undefined, Null or NaN.
//
// # Resolution
//
// Resolve partitions the set by variant, drops duplicates and applies a fixed
// precedence: sentinels, then primitive categories, then instance checks.
// When nothing matches, Resolution.Expected carries the description:
//
//	res := types.Resolve(typeof.Null, []types.Descriptor{
//	    types.String, types.Undefined, types.Time, types.NaN,
//	})
//	// res.Expected == "a string, Time, undefined, or NaN"
//
// Constructor names that repeat a listed primitive category are skipped
// ("a number", not "a number, Number"), and the article is chosen from the
// first letter of the list. Sets made only of sentinels get no article
// ("null or undefined").
//
// # Custom types
//
// Of and Named build descriptors from Go types. An interface type matches
// every implementation:
//
//	types.Of[*User]()              // "User"
//	types.Named[fmt.Stringer]("Stringer")
//
// Only the five built-in wrappers take part in primitive/wrapper duality.
//
// Descriptors are immutable values and the package holds no mutable state, so
// everything here is safe for concurrent use.
package types
