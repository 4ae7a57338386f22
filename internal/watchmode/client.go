package watchmode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.watchmode.com/v1"

// maxSources caps how many streaming service names one movie reports.
const maxSources = 5

// offerTypes are the source types that count as "you can watch it there".
var offerTypes = map[string]bool{
	"sub":  true, // subscription
	"free": true,
	"rent": true,
	"buy":  true,
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

type searchResponse struct {
	TitleResults []struct {
		ID int `json:"id"`
	} `json:"title_results"`
}

type source struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Sources resolves which streaming services carry the given TMDB title.
// It never fails: any error (missing credential, transport failure,
// non-success status, no cross-reference match) yields an empty list so a
// movie without availability data still shows up in results.
func (c *Client) Sources(ctx context.Context, tmdbID int) []string {
	if c.APIKey == "" {
		return nil
	}

	names, err := c.sources(ctx, tmdbID)
	if err != nil {
		log.Printf("[watchmode] sources for %d: %v", tmdbID, err)
		return nil
	}
	return names
}

func (c *Client) sources(ctx context.Context, tmdbID int) ([]string, error) {
	// step 1: cross-reference the TMDB id to Watchmode's own title id
	q := url.Values{}
	q.Set("apiKey", c.APIKey)
	q.Set("search_field", "tmdb_id")
	q.Set("search_value", strconv.Itoa(tmdbID))
	q.Set("types", "movie")

	var sr searchResponse
	if err := c.getJSON(ctx, c.BaseURL+"/search/?"+q.Encode(), &sr); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if len(sr.TitleResults) == 0 {
		return nil, nil
	}
	wmID := sr.TitleResults[0].ID

	// step 2: fetch the source listing for that title
	var sources []source
	srcURL := fmt.Sprintf("%s/title/%d/sources/?apiKey=%s", c.BaseURL, wmID, url.QueryEscape(c.APIKey))
	if err := c.getJSON(ctx, srcURL, &sources); err != nil {
		return nil, fmt.Errorf("sources: %w", err)
	}

	seen := make(map[string]bool, len(sources))
	names := make([]string, 0, maxSources)
	for _, s := range sources {
		if !offerTypes[s.Type] || seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		names = append(names, s.Name)
		if len(names) == maxSources {
			break
		}
	}
	return names, nil
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
