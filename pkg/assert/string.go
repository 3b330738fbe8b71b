package assert

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/assertkit/pkg/humanize"
)

// StringNonEmpty asserts that a value is a string with at least one character
// (whitespace counts).
func StringNonEmpty(value any, opts ...Option) (string, error) {
	return stringLength(value, 1, math.MaxInt, newCall(opts))
}

// StringNonWhitespace asserts that a value is a string with at least one
// non-whitespace character.
func StringNonWhitespace(value any, opts ...Option) (string, error) {
	c := newCall(opts)
	s, err := stringLength(value, 1, math.MaxInt, c)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(s) == "" {
		return "", newError(KindRange, c, s, "validation.non_whitespace", "It cannot be all whitespace.", nil)
	}
	return s, nil
}

// StringMinLength asserts that a value is a string with at least min characters.
func StringMinLength(value any, min int, opts ...Option) (string, error) {
	return stringLength(value, min, math.MaxInt, newCall(opts))
}

// StringMaxLength asserts that a value is a string with no more than max characters.
func StringMaxLength(value any, max int, opts ...Option) (string, error) {
	return stringLength(value, 0, max, newCall(opts))
}

// StringLength asserts that a value is a string with exactly n characters.
func StringLength(value any, n int, opts ...Option) (string, error) {
	return stringLength(value, n, n, newCall(opts))
}

// StringLengthBetween asserts that a value is a string with min to max
// characters, inclusive.
func StringLengthBetween(value any, min, max int, opts ...Option) (string, error) {
	return stringLength(value, min, max, newCall(opts))
}

// stringLength checks the rune count of a string against [min, max].
func stringLength(value any, min, max int, c call) (string, error) {
	s, err := stringValue(value, c)
	if err != nil {
		return "", err
	}

	if err := checkLength(c, s, utf8.RuneCountInString(s), min, max, stringUnits); err != nil {
		return "", err
	}
	return s, nil
}

// StringEnum asserts that a value is a string equal to one of the values of an
// enumeration.
//
//	type Role string
//	const (Admin Role = "admin"; Member Role = "member")
//	role, err := assert.StringEnum(input, []Role{Admin, Member}, assert.Field("role"))
func StringEnum[E ~string](value any, enumeration []E, opts ...Option) (string, error) {
	c := newCall(opts)
	s, err := stringValue(value, c)
	if err != nil {
		return "", err
	}

	names := make([]string, len(enumeration))
	for i, e := range enumeration {
		if string(e) == s {
			return s, nil
		}
		names[i] = string(e)
	}

	expected := humanize.List(names, humanize.Or)
	return "", newError(KindRange, c, s, "validation.in_list", "Expected "+expected+".",
		map[string]any{"allowed_values": names, "expected": expected},
	)
}

// Pattern is a regular expression with optional human-readable examples of a
// matching value. When examples are present they replace the raw expression in
// error messages.
type Pattern struct {
	*regexp.Regexp
	Examples []string
}

// NewPattern compiles expr and attaches examples. It panics if expr does not
// compile, like regexp.MustCompile.
func NewPattern(expr string, examples ...string) Pattern {
	return Pattern{Regexp: regexp.MustCompile(expr), Examples: examples}
}

// StringPattern asserts that a value is a string matching pattern.
func StringPattern(value any, pattern Pattern, opts ...Option) (string, error) {
	c := newCall(opts)
	s, err := stringValue(value, c)
	if err != nil {
		return "", err
	}

	if pattern.Regexp != nil && pattern.MatchString(s) {
		return s, nil
	}

	if len(pattern.Examples) > 0 {
		examples := humanize.Values(pattern.Examples, humanize.Or)
		return "", newError(KindRange, c, s, "validation.pattern_examples", "It should look like "+examples+".",
			map[string]any{"examples": examples},
		)
	}

	expr := ""
	if pattern.Regexp != nil {
		expr = pattern.String()
	}
	return "", newError(KindRange, c, s, "validation.pattern", "It must match /"+expr+"/.",
		map[string]any{"pattern": expr},
	)
}
