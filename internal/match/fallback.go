package match

import "moviematch/pkg/models"

// FallbackMovies is the fixed catalog served whenever the real pipeline
// yields nothing usable, so the group always gets something to argue about.
var FallbackMovies = []models.EnrichedMovie{
	{
		Poster:   "https://image.tmdb.org/t/p/w500/1E5baAaEse26fej7uHcjOgEE2t2.jpg",
		Title:    "Spider-Man: Into the Spider-Verse",
		Overview: "Miles Morales becomes the Spider-Man of his reality while crossing paths with counterparts from other dimensions.",
		Rating:   8.4,
		Runtime:  117,
		Cast:     []string{"Shameik Moore", "Hailee Steinfeld", "Mahershala Ali"},
		WatchOn:  []string{"Netflix", "Apple TV", "Amazon"},
		Trailer:  "https://www.youtube.com/watch?v=g4Hbz2jLxvQ",
	},
	{
		Poster:   "https://image.tmdb.org/t/p/w500/6JjfSchsU6daXk2AKX8EEBjO3Fm.jpg",
		Title:    "Everything Everywhere All at Once",
		Overview: "An unexpected multiverse romp where an exhausted laundromat owner becomes humanity's unlikely hero.",
		Rating:   8.0,
		Runtime:  139,
		Cast:     []string{"Michelle Yeoh", "Ke Huy Quan", "Stephanie Hsu"},
		WatchOn:  []string{"Showtime", "Prime Video", "Apple TV"},
		Trailer:  "https://www.youtube.com/watch?v=wxN1T1uxQ2g",
	},
}

func fallbackResult() Result {
	return Result{Movies: FallbackMovies, Fallback: true}
}
