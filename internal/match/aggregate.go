package match

import "moviematch/pkg/models"

// Defaults used when a room has no preferences at all, or when every record
// leaves a given field empty.
const (
	defaultGenre      = "action"
	defaultLanguage   = "en"
	defaultMaxRuntime = 140
	defaultMinRating  = 7
)

// Aggregate reduces a room's preference records into a single query filter.
// It is pure and never fails: zero records yield the default filter.
//
// Rules:
//   - genre/language: most frequent non-empty value. A later value takes
//     the lead only on a strictly greater count, so on ties the value that
//     reached the count first wins.
//   - max_runtime: minimum of all submitted ceilings (most restrictive).
//   - min_rating: maximum of all submitted floors (most restrictive).
func Aggregate(prefs []models.Preference) models.Filter {
	f := models.Filter{
		Genre:      defaultGenre,
		Language:   defaultLanguage,
		MaxRuntime: defaultMaxRuntime,
		MinRating:  defaultMinRating,
	}
	if len(prefs) == 0 {
		return f
	}

	genreCounts := make(map[string]int)
	langCounts := make(map[string]int)
	var (
		topGenre, topLang       string
		topGenreN, topLangN     int
		haveRuntime, haveRating bool
		minRuntime              int
		maxRating               float64
	)

	for _, p := range prefs {
		if p.Genre != "" {
			genreCounts[p.Genre]++
			if genreCounts[p.Genre] > topGenreN {
				topGenre = p.Genre
				topGenreN = genreCounts[p.Genre]
			}
		}
		if p.Language != "" {
			langCounts[p.Language]++
			if langCounts[p.Language] > topLangN {
				topLang = p.Language
				topLangN = langCounts[p.Language]
			}
		}
		if p.MaxRuntime > 0 {
			if !haveRuntime || p.MaxRuntime < minRuntime {
				minRuntime = p.MaxRuntime
			}
			haveRuntime = true
		}
		if p.MinRating > 0 {
			if !haveRating || p.MinRating > maxRating {
				maxRating = p.MinRating
			}
			haveRating = true
		}
	}

	if topGenre != "" {
		f.Genre = topGenre
	}
	if topLang != "" {
		f.Language = topLang
	}
	if haveRuntime {
		f.MaxRuntime = minRuntime
	}
	if haveRating {
		f.MinRating = maxRating
	}
	return f
}
