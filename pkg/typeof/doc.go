// Package typeof classifies dynamic Go values into the small set of runtime
// categories the assertion packages reason about.
//
// Go has a single nil, no NaN-aware equality and no boxed primitives, so the
// package fixes an explicit model:
//
//   - untyped nil is the missing value and has category Undefined
//   - Null, or a typed nil pointer, func or chan, is null (category Object)
//   - string, bool and every int, uint and float kind map to String, Boolean
//     and Number; NaN is still a Number
//   - *big.Int and big.Int are BigInt, SymbolValue is Symbol
//   - a non-nil pointer to a primitive kind is a boxed wrapper (category Object,
//     see Unbox)
//   - non-nil funcs are Function, everything else is Object
//
// Nil slices and nil maps are treated as empty collections rather than null.
//
// # Usage
//
//	switch typeof.Of(v) {
//	case typeof.String:
//	    // ...
//	case typeof.Object:
//	    if typeof.IsNull(v) {
//	        // ...
//	    }
//	}
//
// All functions are pure and safe for concurrent use.
package typeof
