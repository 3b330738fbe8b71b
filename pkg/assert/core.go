package assert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/assertkit/pkg/humanize"
)

// Kind classifies a validation failure.
type Kind string

const (
	// KindRequired means the value was missing and no default applied.
	KindRequired Kind = "required"
	// KindType means the value is not one of the allowed types.
	KindType Kind = "type"
	// KindRange means the value violates a bound, pattern or membership rule.
	KindRange Kind = "range"
)

// ValidationError represents a single failed check with translation support.
type ValidationError struct {
	Kind  Kind
	Field string
	// Value is the rejected value (the default, if one was substituted).
	Value any
	// Message is the reason sentence, e.g. "Expected a string.".
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Error returns "Invalid <field>: <value>. <reason>".
func (e *ValidationError) Error() string {
	return fmt.Sprintf("Invalid %s: %s. %s", e.Field, humanize.Value(e.Value), e.Message)
}

// Is maps the failure kind to its sentinel error.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrValidationFailed:
		return true
	case ErrValueRequired:
		return e.Kind == KindRequired
	case ErrTypeMismatch:
		return e.Kind == KindType
	case ErrRangeMismatch:
		return e.Kind == KindRange
	}
	return false
}

func newError(kind Kind, c call, value any, key, message string, values map[string]any) *ValidationError {
	if values == nil {
		values = make(map[string]any, 1)
	}
	values["field"] = c.field
	return &ValidationError{
		Kind:              kind,
		Field:             c.field,
		Value:             value,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for i := range ve {
		parts = append(parts, ve[i].Error())
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, " ")
}

// Unwrap exposes every contained error to errors.Is and errors.As.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, len(ve))
	for i := range ve {
		errs[i] = &ve[i]
	}
	return errs
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages of every error reported for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// Fields returns the failed field names in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Apply runs independent checks and collects their validation errors.
// Each check is all-or-nothing on its own; Apply only aggregates. An error that
// is not a validation error is returned immediately.
//
//	err := assert.Apply(
//	    func() error { _, err := assert.StringNonEmpty(req.Name, assert.Field("name")); return err },
//	    func() error { _, err := assert.IntegerPositive(req.Age, assert.Field("age")); return err },
//	)
func Apply(checks ...func() error) error {
	var errs ValidationErrors

	for _, check := range checks {
		if check == nil {
			continue
		}
		err := check()
		if err == nil {
			continue
		}

		var single *ValidationError
		var many ValidationErrors
		switch {
		case errors.As(err, &many):
			errs = append(errs, many...)
		case errors.As(err, &single):
			errs = append(errs, *single)
		default:
			return err
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors returns every validation error carried by err.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var many ValidationErrors
	if errors.As(err, &many) {
		return many
	}

	var single *ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{*single}
	}

	return nil
}

// IsValidationError reports whether err carries at least one validation error.
func IsValidationError(err error) bool {
	return len(ExtractValidationErrors(err)) > 0
}
