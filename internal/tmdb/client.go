package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"moviematch/pkg/models"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

const imageBase = "https://image.tmdb.org/t/p/w500"

const youtubeWatchBase = "https://www.youtube.com/watch?v="

// maxCandidates bounds a discovery result no matter how much the provider
// returns.
const maxCandidates = 6

const maxCast = 5

// ErrUnavailable is returned when discovery cannot be attempted at all:
// no credential, transport failure or a non-success status. The match
// pipeline treats it as fatal and serves the fallback catalog.
var ErrUnavailable = errors.New("tmdb unavailable")

// genreIDs maps our genre names onto TMDB genre ids. Genres missing from
// the map simply omit the genre constraint.
var genreIDs = map[string]int{
	"action": 28,
	"comedy": 35,
	"drama":  18,
}

type Client struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		HTTP:    &http.Client{Timeout: 12 * time.Second},
	}
}

type discoverResponse struct {
	Results []struct {
		ID          int     `json:"id"`
		Title       string  `json:"title"`
		VoteAverage float64 `json:"vote_average"`
		Runtime     int     `json:"runtime"`
	} `json:"results"`
}

// Discover queries the discovery endpoint with the aggregated filter and
// returns at most 6 candidates in the provider's popularity order.
func (c *Client) Discover(ctx context.Context, f models.Filter) ([]models.Candidate, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("%w: no api key configured", ErrUnavailable)
	}

	q := url.Values{}
	q.Set("api_key", c.APIKey)
	q.Set("sort_by", "popularity.desc")
	q.Set("vote_average.gte", strconv.FormatFloat(f.MinRating, 'f', -1, 64))
	q.Set("include_adult", "false")
	q.Set("with_original_language", f.Language)
	if f.MaxRuntime > 0 {
		q.Set("with_runtime.lte", strconv.Itoa(f.MaxRuntime))
	}
	if id, ok := genreIDs[f.Genre]; ok {
		q.Set("with_genres", strconv.Itoa(id))
	}

	var dr discoverResponse
	if err := c.getJSON(ctx, c.BaseURL+"/discover/movie?"+q.Encode(), &dr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	results := dr.Results
	if len(results) > maxCandidates {
		results = results[:maxCandidates]
	}

	out := make([]models.Candidate, 0, len(results))
	for _, r := range results {
		out = append(out, models.Candidate{
			ID:          r.ID,
			Title:       r.Title,
			VoteAverage: r.VoteAverage,
			Runtime:     r.Runtime,
		})
	}
	return out, nil
}

type detailResponse struct {
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	Overview    string  `json:"overview"`
	VoteAverage float64 `json:"vote_average"`
	Runtime     int     `json:"runtime"`
	Credits     struct {
		Cast []struct {
			Name string `json:"name"`
		} `json:"cast"`
	} `json:"credits"`
	Videos struct {
		Results []video `json:"results"`
	} `json:"videos"`
}

type video struct {
	Site string `json:"site"`
	Type string `json:"type"`
	Key  string `json:"key"`
}

// Details fetches full metadata plus cast and trailer data for one
// candidate in a single call. Errors here are per-candidate: the caller
// drops the candidate and keeps going.
func (c *Client) Details(ctx context.Context, id int) (*models.MovieDetail, error) {
	q := url.Values{}
	q.Set("api_key", c.APIKey)
	q.Set("append_to_response", "videos,credits")

	var dr detailResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/movie/%d?%s", c.BaseURL, id, q.Encode()), &dr); err != nil {
		return nil, fmt.Errorf("details for %d: %w", id, err)
	}

	cast := make([]string, 0, maxCast)
	for _, member := range dr.Credits.Cast {
		cast = append(cast, member.Name)
		if len(cast) == maxCast {
			break
		}
	}

	poster := ""
	if dr.PosterPath != "" {
		poster = imageBase + dr.PosterPath
	}

	return &models.MovieDetail{
		Title:    dr.Title,
		Poster:   poster,
		Overview: dr.Overview,
		Rating:   dr.VoteAverage,
		Runtime:  dr.Runtime,
		Cast:     cast,
		Trailer:  extractTrailer(dr.Videos.Results),
	}, nil
}

// extractTrailer picks the first YouTube-hosted entry of type Trailer with
// a key. No trailer is not an error, just an empty field.
func extractTrailer(videos []video) string {
	for _, v := range videos {
		if v.Site == "YouTube" && v.Type == "Trailer" && v.Key != "" {
			return youtubeWatchBase + v.Key
		}
	}
	return ""
}

func (c *Client) getJSON(ctx context.Context, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
