package humanize

import (
	"math"
	"math/big"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/assertkit/pkg/typeof"
)

const (
	// maxInlineItems is the most items a slice or map may hold to be rendered inline.
	maxInlineItems = 5
	// maxInlineLength caps the inner text of an inline slice or map rendering.
	maxInlineLength = 25
)

// Value renders v as a short diagnostic string.
func Value(v any) string {
	return render(v, true)
}

// render formats v. Strings are quoted only when quote is set, which is the
// case for top-level values but not for boxed wrappers or collection items.
func render(v any, quote bool) string {
	switch {
	case typeof.IsMissing(v):
		return "undefined"
	case typeof.IsNull(v):
		return "null"
	}

	if inner, ok := typeof.Unbox(v); ok {
		return render(inner, false)
	}

	switch x := v.(type) {
	case *regexp.Regexp:
		return "/" + x.String() + "/"
	case typeof.SymbolValue:
		return x.String()
	case *big.Int:
		return x.String()
	case big.Int:
		return x.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		if quote {
			return `"` + rv.String() + `"`
		}
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return Number(rv.Float(), 32)
	case reflect.Float64:
		return Number(rv.Float(), 64)
	case reflect.Func:
		return "function"
	case reflect.Slice, reflect.Array:
		return renderArray(rv)
	case reflect.Map:
		return renderMap(rv)
	}

	if name := typeof.TypeName(v); name != "" {
		return name
	}
	return "Object"
}

// Number formats a float as the shortest representation that round-trips.
// Exponent notation is used only at or above 1e21 and below 1e-6.
func Number(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, bitSize)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

func renderArray(rv reflect.Value) string {
	n := rv.Len()
	if n == 0 || n > maxInlineItems {
		return "Array"
	}

	items := make([]string, 0, n)
	for i := range n {
		item := rv.Index(i).Interface()
		if !isInline(item) {
			return "Array"
		}
		items = append(items, render(item, false))
	}

	inner := strings.Join(items, ",")
	if len(inner) > maxInlineLength {
		return "Array"
	}
	return "[" + inner + "]"
}

func renderMap(rv reflect.Value) string {
	n := rv.Len()
	if n == 0 {
		return "{}"
	}
	if n > maxInlineItems {
		return "Object"
	}

	keys := make([]string, 0, n)
	for _, k := range rv.MapKeys() {
		key := k.Interface()
		if !isInline(key) {
			return "Object"
		}
		keys = append(keys, render(key, false))
	}
	slices.Sort(keys)

	inner := strings.Join(keys, ", ")
	if len(inner) > maxInlineLength {
		return "Object"
	}
	return "{" + inner + "}"
}

// isInline reports whether v can appear inside an inline collection rendering.
func isInline(v any) bool {
	if typeof.IsMissing(v) || typeof.IsNull(v) {
		return true
	}
	switch typeof.Of(v) {
	case typeof.String, typeof.Number, typeof.Boolean, typeof.BigInt, typeof.Symbol:
		return true
	}
	return false
}
