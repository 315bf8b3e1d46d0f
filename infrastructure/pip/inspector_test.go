package pip //nolint:testpackage // tests unexported parse functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInspectOutput(t *testing.T) {
	t.Parallel()

	t.Run("should key packages by normalized name", func(t *testing.T) {
		t.Parallel()

		// given
		output := []byte(`{
			"version": "1",
			"pip_version": "24.0",
			"installed": [
				{"metadata": {"name": "Flask-SQLAlchemy", "version": "3.1.1"}},
				{"metadata": {"name": "requests", "version": "2.31.0"}}
			]
		}`)

		// when
		packages, err := parseInspectOutput(output)

		// then
		require.NoError(t, err)
		require.Len(t, packages, 2)
		assert.Equal(t, "3.1.1", packages["flask-sqlalchemy"].Version)
		assert.Equal(t, "Flask-SQLAlchemy", packages["flask-sqlalchemy"].Name)
		assert.Equal(t, "2.31.0", packages["requests"].Version)
	})

	t.Run("should fail on malformed JSON", func(t *testing.T) {
		t.Parallel()

		// given
		output := []byte(`{not json`)

		// when
		packages, err := parseInspectOutput(output)

		// then
		require.Error(t, err)
		assert.Nil(t, packages)
	})

	t.Run("should return an empty map for an empty environment", func(t *testing.T) {
		t.Parallel()

		// given
		output := []byte(`{"version": "1", "installed": []}`)

		// when
		packages, err := parseInspectOutput(output)

		// then
		require.NoError(t, err)
		assert.Empty(t, packages)
	})
}

func TestParseListOutput(t *testing.T) {
	t.Parallel()

	t.Run("should parse the pip list JSON format", func(t *testing.T) {
		t.Parallel()

		// given
		output := []byte(`[
			{"name": "pandas", "version": "2.2.0"},
			{"name": "Openpyxl", "version": "3.1.2"}
		]`)

		// when
		packages, err := parseListOutput(output)

		// then
		require.NoError(t, err)
		require.Len(t, packages, 2)
		assert.Equal(t, "2.2.0", packages["pandas"].Version)
		assert.Equal(t, "3.1.2", packages["openpyxl"].Version)
		assert.Equal(t, "Openpyxl", packages["openpyxl"].Name)
	})

	t.Run("should fail on malformed JSON", func(t *testing.T) {
		t.Parallel()

		// given
		output := []byte(`not json at all`)

		// when
		packages, err := parseListOutput(output)

		// then
		require.Error(t, err)
		assert.Nil(t, packages)
	})
}
