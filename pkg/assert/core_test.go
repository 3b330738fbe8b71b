package assert_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	check "github.com/dmitrymomot/assertkit/pkg/assert"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	t.Run("formats field, value and reason", func(t *testing.T) {
		t.Parallel()

		err := &check.ValidationError{
			Kind:    check.KindRange,
			Field:   "age",
			Value:   -4,
			Message: "Expected zero or greater.",
		}
		assert.Equal(t, "Invalid age: -4. Expected zero or greater.", err.Error())
	})

	t.Run("maps kinds to sentinels", func(t *testing.T) {
		t.Parallel()

		sentinels := map[check.Kind]error{
			check.KindRequired: check.ErrValueRequired,
			check.KindType:     check.ErrTypeMismatch,
			check.KindRange:    check.ErrRangeMismatch,
		}

		for kind, want := range sentinels {
			err := &check.ValidationError{Kind: kind}
			assert.ErrorIs(t, err, want, kind)
			assert.ErrorIs(t, err, check.ErrValidationFailed, kind)

			for other, sentinel := range sentinels {
				if other != kind {
					assert.NotErrorIs(t, err, sentinel, kind)
				}
			}
		}
	})

	t.Run("survives wrapping", func(t *testing.T) {
		t.Parallel()

		_, err := check.String(5, check.Field("name"))
		wrapped := fmt.Errorf("decode request: %w", err)

		assert.ErrorIs(t, wrapped, check.ErrTypeMismatch)
		assert.True(t, check.IsValidationError(wrapped))

		errs := check.ExtractValidationErrors(wrapped)
		require.Len(t, errs, 1)
		assert.Equal(t, "name", errs[0].Field)
	})
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("returns the sentinel message when empty", func(t *testing.T) {
		t.Parallel()

		var errs check.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
		assert.True(t, errs.IsEmpty())
	})

	t.Run("joins the messages", func(t *testing.T) {
		t.Parallel()

		var errs check.ValidationErrors
		errs.Add(check.ValidationError{Field: "email", Value: "", Message: "It cannot be empty."})
		errs.Add(check.ValidationError{Field: "age", Value: 0, Message: "Expected a positive integer."})

		assert.Equal(t,
			`validation failed: Invalid email: "". It cannot be empty. Invalid age: 0. Expected a positive integer.`,
			errs.Error(),
		)
	})

	t.Run("groups by field", func(t *testing.T) {
		t.Parallel()

		var errs check.ValidationErrors
		errs.Add(check.ValidationError{Field: "password", Message: "It should be at least 8 characters."})
		errs.Add(check.ValidationError{Field: "email", Message: "It cannot be empty."})
		errs.Add(check.ValidationError{Field: "password", Message: "It must match /[0-9]/."})

		assert.True(t, errs.Has("password"))
		assert.False(t, errs.Has("name"))
		assert.Equal(t, []string{"password", "email"}, errs.Fields())
		assert.Equal(t,
			[]string{"It should be at least 8 characters.", "It must match /[0-9]/."},
			errs.Get("password"),
		)
		assert.Len(t, errs.GetErrors("password"), 2)
		assert.Nil(t, errs.Get("name"))
	})

	t.Run("unwraps to the contained errors", func(t *testing.T) {
		t.Parallel()

		errs := check.ValidationErrors{
			{Kind: check.KindRequired, Field: "name"},
			{Kind: check.KindRange, Field: "age"},
		}

		assert.ErrorIs(t, errs, check.ErrValidationFailed)
		assert.ErrorIs(t, errs, check.ErrValueRequired)
		assert.ErrorIs(t, errs, check.ErrRangeMismatch)
		assert.NotErrorIs(t, errs, check.ErrTypeMismatch)
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when every check passes", func(t *testing.T) {
		t.Parallel()

		err := check.Apply(
			func() error { _, err := check.StringNonEmpty("Fred", check.Field("name")); return err },
			nil,
			func() error { _, err := check.IntegerPositive(30, check.Field("age")); return err },
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		t.Parallel()

		err := check.Apply(
			func() error { _, err := check.StringNonEmpty("", check.Field("name")); return err },
			func() error { _, err := check.IntegerPositive(0, check.Field("age")); return err },
			func() error { _, err := check.Boolean(true, check.Field("active")); return err },
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, check.ErrValidationFailed)
		assert.ErrorIs(t, err, check.ErrRangeMismatch)

		errs := check.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, []string{"name", "age"}, errs.Fields())
		assert.Equal(t, []string{"Expected a positive integer."}, errs.Get("age"))
	})

	t.Run("flattens nested aggregates", func(t *testing.T) {
		t.Parallel()

		inner := func() error {
			return check.Apply(
				func() error { _, err := check.String(1, check.Field("a")); return err },
				func() error { _, err := check.String(2, check.Field("b")); return err },
			)
		}

		err := check.Apply(inner, func() error { _, err := check.Value(nil, check.Field("c")); return err })
		errs := check.ExtractValidationErrors(err)
		assert.Equal(t, []string{"a", "b", "c"}, errs.Fields())
	})

	t.Run("stops on a non-validation error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		called := false

		err := check.Apply(
			func() error { _, err := check.StringNonEmpty("", check.Field("name")); return err },
			func() error { return boom },
			func() error { called = true; return nil },
		)
		assert.ErrorIs(t, err, boom)
		assert.False(t, check.IsValidationError(err))
		assert.False(t, called)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, check.ExtractValidationErrors(nil))
	assert.Nil(t, check.ExtractValidationErrors(errors.New("plain")))
	assert.False(t, check.IsValidationError(nil))
}
