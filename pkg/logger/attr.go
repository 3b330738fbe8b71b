package logger

import (
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/assertkit/pkg/assert"
	"github.com/dmitrymomot/assertkit/pkg/humanize"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors", keyed by argument position.
// It returns an empty Attr when every error is nil.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". It returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Validation records a validation failure under the group "validation" with
// kind, field, value and message attributes. The value is rendered the same
// way error messages render it.
//
// Aggregated failures become one numbered subgroup per error. Errors that carry
// no validation failure fall back to Error, and nil yields an empty Attr.
func Validation(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}

	errs := assert.ExtractValidationErrors(err)
	switch len(errs) {
	case 0:
		return Error(err)
	case 1:
		return Group("validation", validationAttrs(errs[0])...)
	}

	groups := make([]slog.Attr, len(errs))
	for i, ve := range errs {
		groups[i] = Group(strconv.Itoa(i), validationAttrs(ve)...)
	}
	return Group("validation", groups...)
}

func validationAttrs(ve assert.ValidationError) []slog.Attr {
	return []slog.Attr{
		slog.String("kind", string(ve.Kind)),
		Field(ve.Field),
		slog.String("value", humanize.Value(ve.Value)),
		slog.String("message", ve.Message),
	}
}

// Field records a field name under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
