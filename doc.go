// Package assertkit is a runtime value-validation toolkit for Go.
//
// It checks that a dynamic value (any) has the expected shape before it is
// used, and reports every failure as an error naming the field, the offending
// value and what was expected:
//
//	Invalid thing: null. Expected a string, Time, undefined, or NaN.
//
// Packages:
//
//   - pkg/typeof: value categories (missing, null, NaN, boxed values, symbols)
//   - pkg/humanize: short renderings of values and serial-comma lists
//   - pkg/types: type descriptors and the resolution engine
//   - pkg/assert: presence, type and refinement checks
//   - pkg/i18n: translation of validation errors from JSON or YAML catalogs
//   - pkg/logger: slog factory with validation attributes
//   - pkg/config: environment loading with validated configuration structs
//
// Basic Usage:
//
//	name, err := assert.StringLengthBetween(input["name"], 1, 64, assert.Field("name"))
//	if err != nil {
//		return err
//	}
//
//	port, err := assert.IntegerPositive(input["port"], assert.Field("port"), assert.Default(8080))
//
// The checks are stateless and safe for concurrent use.
package assertkit
