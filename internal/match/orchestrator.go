package match

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"moviematch/pkg/models"
)

// ErrRoomNotFound is the only error Match reports: every provider-side
// problem is recovered locally so the caller always gets a displayable list.
var ErrRoomNotFound = errors.New("room not found")

// RoomStore is the read side of the room/preference persistence
// collaborator. The match pipeline never writes.
type RoomStore interface {
	GetByCode(ctx context.Context, code string) (*models.Room, error)
	ListPreferences(ctx context.Context, roomID string) ([]models.Preference, error)
}

// Discoverer queries the metadata catalog for candidates matching a filter.
type Discoverer interface {
	Discover(ctx context.Context, f models.Filter) ([]models.Candidate, error)
}

// Detailer fetches full metadata for one candidate.
type Detailer interface {
	Details(ctx context.Context, id int) (*models.MovieDetail, error)
}

// AvailabilityResolver reports which streaming services carry a candidate.
// It is non-failing: errors degrade to an empty list.
type AvailabilityResolver interface {
	Sources(ctx context.Context, id int) []string
}

type Orchestrator struct {
	Store        RoomStore
	Discovery    Discoverer
	Details      Detailer
	Availability AvailabilityResolver
}

func NewOrchestrator(store RoomStore, discovery Discoverer, details Detailer, availability AvailabilityResolver) *Orchestrator {
	return &Orchestrator{
		Store:        store,
		Discovery:    discovery,
		Details:      details,
		Availability: availability,
	}
}

// Result is the outcome of one match run. Fallback marks results served
// from the canned catalog; PreferenceCount is only meaningful for real ones.
type Result struct {
	Movies          []models.EnrichedMovie
	PreferenceCount int
	Fallback        bool
}

// Match produces a ranked recommendation list for a room.
//
// Fallback is two-tier: if discovery is unreachable, misconfigured or
// returns no candidates, the canned catalog is served; if every candidate
// later fails enrichment, the canned catalog is served too. An individual
// candidate failing enrichment is simply dropped and never aborts its
// siblings.
func (o *Orchestrator) Match(ctx context.Context, roomCode string) (Result, error) {
	room, err := o.Store.GetByCode(ctx, roomCode)
	if err != nil {
		log.Printf("[match] room lookup %q: %v", roomCode, err)
		return Result{}, fmt.Errorf("%w: %s", ErrRoomNotFound, roomCode)
	}
	if room == nil {
		return Result{}, fmt.Errorf("%w: %s", ErrRoomNotFound, roomCode)
	}

	prefs, err := o.Store.ListPreferences(ctx, room.ID)
	if err != nil {
		log.Printf("[match] load preferences for %s: %v, serving fallback", room.Code, err)
		return fallbackResult(), nil
	}

	filter := Aggregate(prefs)

	candidates, err := o.Discovery.Discover(ctx, filter)
	if err != nil {
		log.Printf("[match] discovery for %s: %v, serving fallback", room.Code, err)
		return fallbackResult(), nil
	}
	if len(candidates) == 0 {
		return fallbackResult(), nil
	}

	// Fan out one goroutine per candidate; indexed slots keep the
	// provider's popularity order no matter the completion order.
	slots := make([]*models.EnrichedMovie, len(candidates))
	var wg sync.WaitGroup
	for i, cand := range candidates {
		wg.Add(1)
		go func(i int, cand models.Candidate) {
			defer wg.Done()
			slots[i] = o.enrich(ctx, cand, filter)
		}(i, cand)
	}
	wg.Wait()

	movies := make([]models.EnrichedMovie, 0, len(candidates))
	for _, m := range slots {
		if m != nil {
			movies = append(movies, *m)
		}
	}
	if len(movies) == 0 {
		return fallbackResult(), nil
	}

	return Result{Movies: movies, PreferenceCount: len(prefs)}, nil
}

// enrich combines the detail and availability lookups for one candidate.
// The two calls run concurrently; a detail failure drops the candidate and
// discards whatever availability came back.
func (o *Orchestrator) enrich(ctx context.Context, cand models.Candidate, filter models.Filter) *models.EnrichedMovie {
	var watchOn []string
	done := make(chan struct{})
	go func() {
		defer close(done)
		watchOn = o.Availability.Sources(ctx, cand.ID)
	}()

	detail, err := o.Details.Details(ctx, cand.ID)
	<-done
	if err != nil {
		log.Printf("[match] detail fetch for %d: %v, dropping candidate", cand.ID, err)
		return nil
	}

	rating := detail.Rating
	if rating == 0 {
		rating = cand.VoteAverage
	}
	runtime := detail.Runtime
	if runtime == 0 {
		runtime = cand.Runtime
	}
	if runtime == 0 {
		runtime = filter.MaxRuntime
	}
	if watchOn == nil {
		watchOn = []string{}
	}

	return &models.EnrichedMovie{
		Title:    detail.Title,
		Poster:   detail.Poster,
		Overview: detail.Overview,
		Rating:   rating,
		Runtime:  runtime,
		Cast:     detail.Cast,
		WatchOn:  watchOn,
		Trailer:  detail.Trailer,
	}
}
