package toolchain //nolint:testpackage // tests unexported parsing helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	t.Run("should extract semantic versions from tool banners", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "3.12.8", parseVersion("Python 3.12.8"))
		assert.Equal(t, "24.0", parseVersion("pip 24.0 from /usr/lib/python3/site-packages/pip"))
		assert.Equal(t, "0.4.10", parseVersion("ruff 0.4.10"))
	})

	t.Run("should only inspect the first line", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "8.1.1", parseVersion("pytest 8.1.1\nplugins: cov-5.0.0"))
	})

	t.Run("should return empty for unversioned output", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, parseVersion("no version here"))
	})
}

func TestFirstLine(t *testing.T) {
	t.Parallel()

	t.Run("should trim and cut at the first newline", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "one", firstLine("one\ntwo\nthree"))
		assert.Equal(t, "single", firstLine("  single  "))
	})
}

func TestCheckPrerequisites(t *testing.T) {
	t.Parallel()

	t.Run("should report everything missing without an interpreter", func(t *testing.T) {
		t.Parallel()

		// given
		ctx := context.Background()

		// when
		prereqs := CheckPrerequisites(ctx, "")

		// then
		require.NotEmpty(t, prereqs)
		assert.Equal(t, "python", prereqs[0].Name)
		for _, p := range prereqs {
			assert.False(t, p.Installed)
		}
	})

	t.Run("should list the interpreter first and pip as required", func(t *testing.T) {
		t.Parallel()

		// given
		ctx := context.Background()

		// when
		prereqs := CheckPrerequisites(ctx, "")

		// then
		require.GreaterOrEqual(t, len(prereqs), 2)
		assert.True(t, prereqs[0].Required)
		assert.Equal(t, "pip", prereqs[1].Name)
		assert.True(t, prereqs[1].Required)
	})
}
