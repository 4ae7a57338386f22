package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviematch/pkg/models"
)

func newTestClient(srv *httptest.Server) *Client {
	c := NewClient("test-key")
	c.BaseURL = srv.URL
	c.HTTP = srv.Client()
	return c
}

func TestDiscoverParamsAndCap(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"results":[
			{"id":1,"title":"A","vote_average":8.2},
			{"id":2,"title":"B","vote_average":7.9},
			{"id":3,"title":"C"},
			{"id":4,"title":"D"},
			{"id":5,"title":"E"},
			{"id":6,"title":"F"},
			{"id":7,"title":"G"},
			{"id":8,"title":"H"}
		]}`)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	candidates, err := c.Discover(context.Background(), models.Filter{
		Genre:      "comedy",
		Language:   "en",
		MaxRuntime: 120,
		MinRating:  7.5,
	})
	require.NoError(t, err)

	assert.Equal(t, "popularity.desc", gotQuery.Get("sort_by"))
	assert.Equal(t, "7.5", gotQuery.Get("vote_average.gte"))
	assert.Equal(t, "120", gotQuery.Get("with_runtime.lte"))
	assert.Equal(t, "en", gotQuery.Get("with_original_language"))
	assert.Equal(t, "35", gotQuery.Get("with_genres"))
	assert.Equal(t, "false", gotQuery.Get("include_adult"))

	require.Len(t, candidates, 6)
	assert.Equal(t, 1, candidates[0].ID)
	assert.Equal(t, 8.2, candidates[0].VoteAverage)
	assert.Equal(t, 6, candidates[5].ID)
}

func TestDiscoverOmitsUnmappedGenreAndZeroRuntime(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"results":[]}`)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.Discover(context.Background(), models.Filter{
		Genre:     "documentary",
		Language:  "en",
		MinRating: 7,
	})
	require.NoError(t, err)
	assert.False(t, gotQuery.Has("with_genres"))
	assert.False(t, gotQuery.Has("with_runtime.lte"))
}

func TestDiscoverNoAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider must not be called without a credential")
	}))
	defer srv.Close()

	c := newTestClient(srv)
	c.APIKey = ""
	_, err := c.Discover(context.Background(), models.Filter{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestDiscoverNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Discover(context.Background(), models.Filter{Language: "en"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestDiscoverTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := newTestClient(srv).Discover(context.Background(), models.Filter{Language: "en"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603", r.URL.Path)
		assert.Equal(t, "videos,credits", r.URL.Query().Get("append_to_response"))
		fmt.Fprint(w, `{
			"title":"The Matrix",
			"poster_path":"/matrix.jpg",
			"overview":"A hacker learns the truth.",
			"vote_average":8.7,
			"runtime":136,
			"credits":{"cast":[
				{"name":"Keanu Reeves"},{"name":"Laurence Fishburne"},
				{"name":"Carrie-Anne Moss"},{"name":"Hugo Weaving"},
				{"name":"Joe Pantoliano"},{"name":"Gloria Foster"},
				{"name":"Marcus Chong"}
			]},
			"videos":{"results":[
				{"site":"Vimeo","type":"Trailer","key":"v1"},
				{"site":"YouTube","type":"Clip","key":"c1"},
				{"site":"YouTube","type":"Trailer","key":""},
				{"site":"YouTube","type":"Trailer","key":"m8e-FF8MsqU"}
			]}
		}`)
	}))
	defer srv.Close()

	d, err := newTestClient(srv).Details(context.Background(), 603)
	require.NoError(t, err)

	assert.Equal(t, "The Matrix", d.Title)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/matrix.jpg", d.Poster)
	assert.Equal(t, 8.7, d.Rating)
	assert.Equal(t, 136, d.Runtime)
	assert.Equal(t, []string{
		"Keanu Reeves", "Laurence Fishburne", "Carrie-Anne Moss",
		"Hugo Weaving", "Joe Pantoliano",
	}, d.Cast)
	assert.Equal(t, "https://www.youtube.com/watch?v=m8e-FF8MsqU", d.Trailer)
}

func TestDetailsNoTrailerNoPoster(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"title":"Obscure","videos":{"results":[{"site":"Vimeo","type":"Trailer","key":"x"}]}}`)
	}))
	defer srv.Close()

	d, err := newTestClient(srv).Details(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, d.Trailer)
	assert.Empty(t, d.Poster)
}

func TestDetailsNonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Details(context.Background(), 1)
	assert.Error(t, err)
}
