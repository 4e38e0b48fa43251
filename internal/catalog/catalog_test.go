package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/bingo-backend/internal/bingo"
	"github.com/rocketscienceinc/bingo-backend/internal/entity"
)

func TestDefault(t *testing.T) {
	// When: taking the built-in pool
	phrases := Default()

	// Then: it can fill a board
	require.NoError(t, Validate(phrases))
	require.GreaterOrEqual(t, len(phrases), entity.PhraseCount)

	// Then: mutating the copy does not leak into the package state
	phrases[0] = "changed"
	assert.NotEqual(t, phrases[0], Default()[0])
}

func TestValidate(t *testing.T) {
	t.Run("Error on small catalog", func(t *testing.T) {
		// Given: a pool below the minimum
		phrases := Default()[:entity.PhraseCount-1]

		// Then: the insufficient catalog error is returned
		require.ErrorIs(t, Validate(phrases), bingo.ErrInsufficientCatalog)
	})

	t.Run("Error on duplicate phrase", func(t *testing.T) {
		// Given: a pool with a repeated phrase
		phrases := Default()
		phrases[1] = phrases[0]

		// Then: the duplicate is rejected
		err := Validate(phrases)
		require.ErrorIs(t, err, ErrDuplicatePhrase)
		assert.ErrorContains(t, err, phrases[0])
	})
}

func TestLoad(t *testing.T) {
	t.Run("Empty path falls back to defaults", func(t *testing.T) {
		// When: loading without a path
		phrases, err := Load("")

		// Then: the built-in pool is returned
		require.NoError(t, err)
		require.Equal(t, Default(), phrases)
	})

	t.Run("Loads a valid file", func(t *testing.T) {
		// Given: a YAML catalog file with 24 phrases
		content := "phrases:\n"
		for _, phrase := range Default()[:entity.PhraseCount] {
			content += "  - \"" + phrase + "\"\n"
		}

		path := filepath.Join(t.TempDir(), "catalog.yml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		phrases, err := Load(path)

		// Then: the file's pool is returned
		require.NoError(t, err)
		require.Len(t, phrases, entity.PhraseCount)
	})

	t.Run("Error on missing file", func(t *testing.T) {
		// When: loading a path that does not exist
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

		// Then: the read error is surfaced
		require.Error(t, err)
	})

	t.Run("Error on undersized file", func(t *testing.T) {
		// Given: a YAML catalog file with too few phrases
		path := filepath.Join(t.TempDir(), "catalog.yml")
		require.NoError(t, os.WriteFile(path, []byte("phrases:\n  - \"only one\"\n"), 0o600))

		// When: loading it
		_, err := Load(path)

		// Then: the insufficient catalog error is surfaced, not truncated away
		require.ErrorIs(t, err, bingo.ErrInsufficientCatalog)
	})
}
