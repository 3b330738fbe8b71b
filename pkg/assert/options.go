package assert

// DefaultField is the field name used when no Field option is given.
const DefaultField = "value"

// Option configures a single check.
type Option func(*call)

type call struct {
	field string
	def   any
}

// Field sets the name reported in error messages. Empty names are ignored.
func Field(name string) Option {
	return func(c *call) {
		if name != "" {
			c.field = name
		}
	}
}

// Default sets the value used when the input is missing (untyped nil).
// A nil default has no effect.
func Default(v any) Option {
	return func(c *call) {
		c.def = v
	}
}

func newCall(opts []Option) call {
	c := call{field: DefaultField}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// apply substitutes the default for a missing value.
func (c call) apply(value any) any {
	if value == nil && c.def != nil {
		return c.def
	}
	return value
}
