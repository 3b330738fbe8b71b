package assert

import "strconv"

// lengthUnits holds the wording of length messages for one kind of value.
type lengthUnits struct {
	// key prefixes the translation keys of bound violations.
	key              string
	singular, plural string
	exactly          string
	atLeast          string
	atMost           string
}

var (
	stringUnits = lengthUnits{
		key:      "validation.string",
		singular: "character",
		plural:   "characters",
		exactly:  "It must be exactly",
		atLeast:  "It should be at least",
		atMost:   "It cannot be more than",
	}
	arrayUnits = lengthUnits{
		key:      "validation.array",
		singular: "item",
		plural:   "items",
		exactly:  "It must have exactly",
		atLeast:  "It should have at least",
		atMost:   "It cannot have more than",
	}
)

func (u lengthUnits) count(n int) string {
	if n == 1 {
		return "1 " + u.singular
	}
	return strconv.Itoa(n) + " " + u.plural
}

// checkLength reports a range error when length is outside [min, max].
// A minimum of 1 reads "cannot be empty" and equal bounds read "exactly".
func checkLength(c call, value any, length, min, max int, u lengthUnits) error {
	switch {
	case length < min:
		values := map[string]any{"min": min, "length": length, "count": min}
		switch {
		case min == 1:
			return newError(KindRange, c, value, "validation.non_empty", "It cannot be empty.", values)
		case min == max:
			return newError(KindRange, c, value, u.key+".exact_length", u.exactly+" "+u.count(min)+".", values)
		default:
			return newError(KindRange, c, value, u.key+".min_length", u.atLeast+" "+u.count(min)+".", values)
		}
	case length > max:
		values := map[string]any{"max": max, "length": length, "count": max}
		if min == max {
			return newError(KindRange, c, value, u.key+".exact_length", u.exactly+" "+u.count(max)+".", values)
		}
		return newError(KindRange, c, value, u.key+".max_length", u.atMost+" "+u.count(max)+".", values)
	}
	return nil
}
