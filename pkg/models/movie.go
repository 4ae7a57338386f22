package models

// Filter is the single aggregated query derived from all preference records
// in a room. It is recomputed on every match request and never persisted.
type Filter struct {
	Genre      string  `json:"genre"`
	Language   string  `json:"language"`
	MaxRuntime int     `json:"max_runtime"`
	MinRating  float64 `json:"min_rating"`
}

// Candidate is a provider-identified movie stub returned by discovery.
// It only carries enough data to drive enrichment.
type Candidate struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	VoteAverage float64 `json:"vote_average"`
	Runtime     int     `json:"runtime"`
}

// MovieDetail is the full per-movie metadata from the detail endpoint.
type MovieDetail struct {
	Title    string
	Poster   string // absolute URL or empty
	Overview string
	Rating   float64
	Runtime  int
	Cast     []string // first 5 credited names, provider order
	Trailer  string   // watch URL or empty
}

// EnrichedMovie is the externally visible result unit: a candidate after
// detail and availability lookups have succeeded.
type EnrichedMovie struct {
	Title    string   `json:"title"`
	Poster   string   `json:"poster"`
	Overview string   `json:"overview"`
	Rating   float64  `json:"rating"`
	Runtime  int      `json:"runtime"`
	Cast     []string `json:"cast"`
	WatchOn  []string `json:"watch_on"`
	Trailer  string   `json:"trailer"`
}
