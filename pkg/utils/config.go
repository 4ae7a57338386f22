package utils

import "os"

// ProviderConfig carries the external catalog credentials. An empty key
// means that provider is not configured: discovery then fails over to the
// fallback catalog, and availability resolves to nothing.
type ProviderConfig struct {
	TMDBAPIKey      string
	WatchmodeAPIKey string
}

func LoadProviderConfig() ProviderConfig {
	return ProviderConfig{
		TMDBAPIKey:      os.Getenv("TMDB_API_KEY"),
		WatchmodeAPIKey: os.Getenv("WATCHMODE_API_KEY"),
	}
}

// ListenAddr returns the HTTP listen address, honoring PORT if set.
func ListenAddr() string {
	if p := os.Getenv("PORT"); p != "" {
		return ":" + p
	}
	return ":8080"
}
