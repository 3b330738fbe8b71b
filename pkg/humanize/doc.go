// Package humanize renders values and lists as short, readable phrases for
// diagnostic messages.
//
// Value produces a compact rendering of any dynamic value. Strings are quoted,
// numbers use their shortest round-trip form ("0.1", "1e+21"), short slices and
// maps are inlined ("[1,2,3]", "{foo}") and everything else collapses to a
// type name ("Array", "Time", "function").
//
// List and Values join items into an English phrase with a serial comma:
//
//	humanize.List([]string{"string", "number", "Time"}, humanize.Or)
//	// "string, number, or Time"
//
//	humanize.Values([]any{"Fred", "Barney"}, humanize.Or)
//	// `"Fred" or "Barney"`
package humanize
