package i18n_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/assertkit/pkg/i18n"
)

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	t.Run("loads every catalog file", func(t *testing.T) {
		t.Parallel()

		got, err := i18n.NewFSAdapter(os.DirFS("testdata"), "catalog").Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Contains(t, got, "fr")
		assert.Contains(t, got, "de")
	})

	t.Run("reports broken files", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.NewFSAdapter(os.DirFS("testdata"), "broken").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
	})

	t.Run("reports a missing directory", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.NewFSAdapter(os.DirFS("testdata"), "missing").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(os.DirFS("testdata"), "catalog").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
	})

	t.Run("bundles the English catalog", func(t *testing.T) {
		t.Parallel()

		got, err := i18n.DefaultAdapter().Load(context.Background())
		require.NoError(t, err)
		assert.Contains(t, got, "en")
	})
}

func TestChainAdapter(t *testing.T) {
	t.Parallel()

	chain := i18n.ChainAdapter{
		i18n.DefaultAdapter(),
		nil,
		&i18n.MapAdapter{Data: map[string]map[string]any{
			"en": {"validation": map[string]any{"required": "Required!"}},
		}},
	}

	tr, err := i18n.NewTranslator(context.Background(), chain)
	require.NoError(t, err)

	assert.Equal(t, "Required!", tr.T("en", "validation.required", nil))
	assert.Equal(t, "It cannot be empty.", tr.T("en", "validation.non_empty", nil), "sibling keys survive the merge")
}

func TestMapAdapter(t *testing.T) {
	t.Parallel()

	got, err := (&i18n.MapAdapter{}).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
