package catalog

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "the matrix", r.URL.Query().Get("query"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [
			{"id": 603, "title": "The Matrix", "overview": "A hacker.", "release_date": "1999-03-30", "poster_path": "/matrix.jpg"},
			{"id": 604, "title": "The Matrix Reloaded", "overview": "", "release_date": "", "poster_path": ""}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "https://img.example/w500", "test-key", testLogger())

	movies, err := client.Search(context.Background(), "the matrix")
	require.NoError(t, err)
	require.Len(t, movies, 2)

	assert.Equal(t, Movie{
		ID:       603,
		Title:    "The Matrix",
		Overview: "A hacker.",
		Year:     "1999",
		Poster:   "https://img.example/w500/matrix.jpg",
	}, movies[0])

	// absent release date and poster stay absent
	assert.Empty(t, movies[1].Year)
	assert.Empty(t, movies[1].Poster)
}

func TestTrending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trending/movie/week", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [{"id": 1, "title": "Trending Now", "release_date": "2024-01-15"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "https://img.example/w500", "test-key", testLogger())

	movies, err := client.Trending(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "2024", movies[0].Year)
}

func TestDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 603, "title": "The Matrix", "overview": "A hacker.", "release_date": "1999-03-30", "poster_path": "/matrix.jpg"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "https://img.example/w500", "test-key", testLogger())

	movie, err := client.Details(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, int64(603), movie.ID)
	assert.Equal(t, "1999", movie.Year)
	assert.Equal(t, "https://img.example/w500/matrix.jpg", movie.Poster)
}

func TestUpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status_message": "Invalid API key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "https://img.example/w500", "bad-key", testLogger())

	_, err := client.Trending(context.Background())
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestUpstreamMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>definitely not json</html>`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "https://img.example/w500", "test-key", testLogger())

	_, err := client.Search(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestUpstreamUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(srv.URL, "https://img.example/w500", "test-key", testLogger())

	_, err := client.Details(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUpstream)
}
