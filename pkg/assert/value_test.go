package assert_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	check "github.com/dmitrymomot/assertkit/pkg/assert"
	"github.com/dmitrymomot/assertkit/pkg/typeof"
)

func TestValue(t *testing.T) {
	t.Parallel()

	t.Run("returns present values unchanged", func(t *testing.T) {
		t.Parallel()

		values := []any{"", "hello", 0, 42, false, true, typeof.Null, []int{}, map[string]int{}}
		for _, v := range values {
			got, err := check.Value(v)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})

	t.Run("treats NaN as present", func(t *testing.T) {
		t.Parallel()

		got, err := check.Value(math.NaN())
		require.NoError(t, err)
		assert.True(t, typeof.IsNaN(got))
	})

	t.Run("rejects a missing value", func(t *testing.T) {
		t.Parallel()

		got, err := check.Value(nil)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.Equal(t, "Invalid value: undefined. A value is required.", err.Error())
		assert.ErrorIs(t, err, check.ErrValueRequired)
		assert.ErrorIs(t, err, check.ErrValidationFailed)
		assert.NotErrorIs(t, err, check.ErrTypeMismatch)
	})

	t.Run("names the field", func(t *testing.T) {
		t.Parallel()

		_, err := check.Value(nil, check.Field("thing"))
		require.Error(t, err)
		assert.Equal(t, "Invalid thing: undefined. A value is required.", err.Error())
	})

	t.Run("ignores an empty field name", func(t *testing.T) {
		t.Parallel()

		_, err := check.Value(nil, check.Field(""))
		require.Error(t, err)
		assert.Equal(t, "Invalid value: undefined. A value is required.", err.Error())
	})

	t.Run("substitutes the default for a missing value", func(t *testing.T) {
		t.Parallel()

		got, err := check.Value(nil, check.Field("thing"), check.Default(5))
		require.NoError(t, err)
		assert.Equal(t, 5, got)
	})

	t.Run("keeps a present value over the default", func(t *testing.T) {
		t.Parallel()

		got, err := check.Value(0, check.Default(5))
		require.NoError(t, err)
		assert.Equal(t, 0, got)

		got, err = check.Value(typeof.Null, check.Default(5))
		require.NoError(t, err)
		assert.Equal(t, typeof.Null, got)
	})

	t.Run("a nil default has no effect", func(t *testing.T) {
		t.Parallel()

		_, err := check.Value(nil, check.Default(nil))
		assert.ErrorIs(t, err, check.ErrValueRequired)
	})

	t.Run("skips nil options", func(t *testing.T) {
		t.Parallel()

		got, err := check.Value("x", nil, check.Field("name"))
		require.NoError(t, err)
		assert.Equal(t, "x", got)
	})
}

func TestValueOneOf(t *testing.T) {
	t.Parallel()

	flintstones := []string{"Fred", "Barney", "Wilma", "Betty"}

	t.Run("accepts a listed string", func(t *testing.T) {
		t.Parallel()

		got, err := check.ValueOneOf("Barney", flintstones)
		require.NoError(t, err)
		assert.Equal(t, "Barney", got)
	})

	t.Run("rejects an unlisted string", func(t *testing.T) {
		t.Parallel()

		_, err := check.ValueOneOf("Arnold", flintstones)
		require.Error(t, err)
		assert.Equal(t, `Invalid value: "Arnold". Expected "Fred", "Barney", "Wilma", or "Betty".`, err.Error())
		assert.ErrorIs(t, err, check.ErrRangeMismatch)
	})

	t.Run("rejects an unlisted number", func(t *testing.T) {
		t.Parallel()

		_, err := check.ValueOneOf(-1, []int{1, 2, 3, 4})
		require.Error(t, err)
		assert.Equal(t, "Invalid value: -1. Expected 1, 2, 3, or 4.", err.Error())
	})

	t.Run("compares numbers across Go types", func(t *testing.T) {
		t.Parallel()

		got, err := check.ValueOneOf(int64(2), []float64{1, 2})
		require.NoError(t, err)
		assert.Equal(t, int64(2), got)

		_, err = check.ValueOneOf(uint8(3), []int{1, 2, 3})
		assert.NoError(t, err)
	})

	t.Run("NaN equals NaN", func(t *testing.T) {
		t.Parallel()

		_, err := check.ValueOneOf(math.NaN(), []any{1, math.NaN()})
		assert.NoError(t, err)
	})

	t.Run("compares slices by identity", func(t *testing.T) {
		t.Parallel()

		s := []int{1}
		_, err := check.ValueOneOf(s, []any{s})
		assert.NoError(t, err)

		_, err = check.ValueOneOf([]int{1}, []any{[]int{1}})
		assert.ErrorIs(t, err, check.ErrRangeMismatch)
	})

	t.Run("never matches a function", func(t *testing.T) {
		t.Parallel()

		fn := func() {}
		_, err := check.ValueOneOf(fn, []any{fn})
		assert.ErrorIs(t, err, check.ErrRangeMismatch)
	})

	t.Run("does not coerce strings to numbers", func(t *testing.T) {
		t.Parallel()

		_, err := check.ValueOneOf("1", []int{1})
		assert.ErrorIs(t, err, check.ErrRangeMismatch)
	})

	t.Run("requires a value", func(t *testing.T) {
		t.Parallel()

		_, err := check.ValueOneOf(nil, flintstones, check.Field("name"))
		require.Error(t, err)
		assert.Equal(t, "Invalid name: undefined. A value is required.", err.Error())
	})

	t.Run("validates the default", func(t *testing.T) {
		t.Parallel()

		got, err := check.ValueOneOf(nil, flintstones, check.Default("Wilma"))
		require.NoError(t, err)
		assert.Equal(t, "Wilma", got)

		_, err = check.ValueOneOf(nil, flintstones, check.Field("name"), check.Default("Dino"))
		require.Error(t, err)
		assert.Equal(t, `Invalid name: "Dino". Expected "Fred", "Barney", "Wilma", or "Betty".`, err.Error())
	})

	t.Run("carries the allowed values for translation", func(t *testing.T) {
		t.Parallel()

		_, err := check.ValueOneOf("Arnold", flintstones, check.Field("name"))
		var ve *check.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "validation.in_list", ve.TranslationKey)
		assert.Equal(t, flintstones, ve.TranslationValues["allowed_values"])
		assert.Equal(t, "name", ve.TranslationValues["field"])
	})
}
