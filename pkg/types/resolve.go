package types

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/assertkit/pkg/humanize"
	"github.com/dmitrymomot/assertkit/pkg/typeof"
)

// Resolution is the outcome of matching a value against an allowed set.
type Resolution struct {
	// OK reports whether the value matched one of the descriptors.
	OK bool
	// Matched is the descriptor that accepted the value. It is the zero
	// Descriptor when OK is false.
	Matched Descriptor
	// Expected describes the allowed set, for example
	// "a string, Time, undefined, or NaN". It is empty when OK is true.
	Expected string
}

// partition is an allowed set split by descriptor kind, in input order and
// without duplicates.
type partition struct {
	sentinels    []Descriptor
	primitives   []Descriptor
	constructors []Descriptor
}

func partitionOf(allowed []Descriptor) partition {
	var p partition
	seen := make(map[string]bool, len(allowed))
	tags := make(map[typeof.Category]bool, len(allowed))

	for _, d := range allowed {
		if d.kind == 0 || seen[d.id] {
			continue
		}
		seen[d.id] = true

		switch d.kind {
		case KindSentinel:
			p.sentinels = append(p.sentinels, d)
		case KindPrimitive:
			if !tags[d.tag] {
				tags[d.tag] = true
				p.primitives = append(p.primitives, d)
			}
		case KindConstructor:
			p.constructors = append(p.constructors, d)
			if d.tag != "" && !tags[d.tag] {
				tags[d.tag] = true
				p.primitives = append(p.primitives, d)
			}
		}
	}
	return p
}

// Resolve decides whether value belongs to the allowed set.
//
// Precedence is fixed regardless of input order: a sentinel match wins, then a
// primitive tag equal to the value's category, then a constructor instance
// check. Null values never satisfy a constructor.
func Resolve(value any, allowed []Descriptor) Resolution {
	p := partitionOf(allowed)

	for _, d := range p.sentinels {
		if d.match(value) {
			return Resolution{OK: true, Matched: d}
		}
	}

	category := typeof.Of(value)
	for _, d := range p.primitives {
		if d.tag == category {
			return Resolution{OK: true, Matched: d}
		}
	}

	if !typeof.IsNull(value) {
		for _, d := range p.constructors {
			if d.match != nil && d.match(value) {
				return Resolution{OK: true, Matched: d}
			}
		}
	}

	return Resolution{Expected: p.expected()}
}

// Expected returns the expectation clause for an allowed set without matching
// any value.
func Expected(allowed []Descriptor) string {
	return partitionOf(allowed).expected()
}

// toLower folds s to lower case. A Caser is stateful, so each call gets its own.
func toLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func (p partition) expected() string {
	if len(p.primitives) == 0 && len(p.constructors) == 0 {
		if len(p.sentinels) == 0 {
			return "nothing"
		}
		return humanize.List(names(p.sentinels), humanize.Or)
	}

	tags := make([]string, 0, len(p.primitives))
	for _, d := range p.primitives {
		tags = append(tags, string(d.tag))
	}

	items := slices.Clone(tags)
	for _, d := range p.constructors {
		if slices.Contains(tags, toLower(d.name)) {
			continue
		}
		items = append(items, d.name)
	}
	items = append(items, names(p.sentinels)...)

	list := humanize.List(items, humanize.Or)
	return Article(list) + " " + list
}

// Article returns "an" when phrase starts with a vowel letter and "a" otherwise.
func Article(phrase string) string {
	if phrase == "" {
		return "a"
	}
	r, _ := utf8.DecodeRuneInString(phrase)
	if strings.ContainsAny(toLower(string(r)), "aeiou") {
		return "an"
	}
	return "a"
}

func names(ds []Descriptor) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.name
	}
	return out
}
