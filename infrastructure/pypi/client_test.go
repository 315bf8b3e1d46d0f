package pypi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driverdata/dcvt-devkit/infrastructure/pypi"
)

func TestClient_LatestVersion(t *testing.T) {
	t.Parallel()

	t.Run("should return the latest version from the index", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/pypi/requests/json", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"info":{"name":"requests","version":"2.31.0"}}`))
			},
		))
		defer server.Close()
		client := pypi.NewWithBaseURL(server.URL)

		// when
		info, err := client.LatestVersion(context.Background(), "requests")

		// then
		require.NoError(t, err)
		assert.Equal(t, "requests", info.Name)
		assert.Equal(t, "2.31.0", info.Latest)
	})

	t.Run("should normalize the package name in the request path", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/pypi/flask-sqlalchemy/json", r.URL.Path)
				_, _ = w.Write([]byte(`{"info":{"name":"Flask-SQLAlchemy","version":"3.1.1"}}`))
			},
		))
		defer server.Close()
		client := pypi.NewWithBaseURL(server.URL)

		// when
		info, err := client.LatestVersion(context.Background(), "Flask_SQLAlchemy")

		// then
		require.NoError(t, err)
		assert.Equal(t, "3.1.1", info.Latest)
	})

	t.Run("should fail on a non-200 response", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		))
		defer server.Close()
		client := pypi.NewWithBaseURL(server.URL)

		// when
		info, err := client.LatestVersion(context.Background(), "nonexistent-pkg")

		// then
		require.Error(t, err)
		assert.Nil(t, info)
	})

	t.Run("should fail on malformed JSON", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
		))
		defer server.Close()
		client := pypi.NewWithBaseURL(server.URL)

		// when
		info, err := client.LatestVersion(context.Background(), "requests")

		// then
		require.Error(t, err)
		assert.Nil(t, info)
	})

	t.Run("should fail when the index omits the version", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"info":{"name":"requests"}}`))
			},
		))
		defer server.Close()
		client := pypi.NewWithBaseURL(server.URL)

		// when
		info, err := client.LatestVersion(context.Background(), "requests")

		// then
		require.Error(t, err)
		assert.Nil(t, info)
	})

	t.Run("should fail when the index is unreachable", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(
			func(_ http.ResponseWriter, _ *http.Request) {},
		))
		server.Close() // closed on purpose
		client := pypi.NewWithBaseURL(server.URL)

		// when
		info, err := client.LatestVersion(context.Background(), "requests")

		// then
		require.Error(t, err)
		assert.Nil(t, info)
	})
}
