// Package assert validates dynamic values at runtime and reports failures with
// messages that name the field, the offending value and the expectation.
//
// Every check takes the value as `any`, an optional field name and an optional
// default, and either returns the value (narrowed to its Go type where that
// makes sense) or a *ValidationError. There is no partial success and no
// coercion: a string is never parsed as a number, a number is never rounded.
//
// # Layers
//
//   - Value is the presence check. Untyped nil is the missing value; when a
//     Default option is given it is substituted first.
//   - Type and TypeOneOf run the type resolution engine from package types
//     against a set of descriptors.
//   - String, Number, Boolean, Object, Array and Function are single-category
//     checks built on the engine. Number rejects NaN, Object rejects null.
//   - The String*, Number*, Integer* and Array* refinements add length,
//     magnitude, enum and pattern rules on top.
//
// # Usage
//
//	name, err := assert.StringNonWhitespace(input["name"], assert.Field("name"))
//	if err != nil {
//	    return err // Invalid name: "   ". It cannot be all whitespace.
//	}
//
//	limit, err := assert.IntegerPositive(input["limit"], assert.Field("limit"), assert.Default(20))
//
//	when, err := assert.TypeOneOf(input["when"],
//	    []types.Descriptor{types.Time, types.String, types.Null},
//	    assert.Field("when"),
//	)
//	// Invalid when: 42. Expected a string, Time, or null.
//
// # Error Handling
//
// Failures are *ValidationError values whose Error method returns
// "Invalid <field>: <value>. <reason>". Use errors.Is with ErrValueRequired,
// ErrTypeMismatch or ErrRangeMismatch to branch on the failure kind. A default
// that fails validation is reported under the field name, just like a bad
// input.
//
// Apply runs several independent checks and collects their failures into a
// ValidationErrors slice, which carries the same helpers as the field errors
// elsewhere in the kit (Has, Get, Fields) plus translation keys for i18n.
//
// All checks are pure functions over call-local data and are safe for
// concurrent use.
package assert
