package humanize

import "strings"

const (
	// Or joins the last item of a list with "or".
	Or = "or"
	// And joins the last item of a list with "and".
	And = "and"
)

// List joins items into a phrase such as "A", "A or B" or "A, B, or C".
// Lists of three or more items get a serial comma before the conjunction.
func List(items []string, conjunction string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conjunction + " " + items[1]
	}

	var b strings.Builder
	last := len(items) - 1
	for i, item := range items[:last] {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(item)
	}
	b.WriteString(", ")
	b.WriteString(conjunction)
	b.WriteString(" ")
	b.WriteString(items[last])
	return b.String()
}

// Values renders each value with Value and joins them with List.
func Values[T any](values []T, conjunction string) string {
	items := make([]string, len(values))
	for i, v := range values {
		items[i] = Value(v)
	}
	return List(items, conjunction)
}
