package dork

import (
	"net/url"
	"strings"

	"github.com/thesavant42/dorkcraft/internal/models"
)

// Engines is the fixed engine table. The first entry is the default.
var Engines = []models.Engine{
	{Key: "1", Name: "google", Label: "Google", BaseURL: "https://www.google.com/search?q="},
	{Key: "2", Name: "duckduckgo", Label: "DuckDuckGo", BaseURL: "https://duckduckgo.com/?q="},
	{Key: "3", Name: "bing", Label: "Bing", BaseURL: "https://www.bing.com/search?q="},
}

// DefaultEngine returns the engine used for empty or unknown choices
func DefaultEngine() models.Engine {
	return Engines[0]
}

// SelectEngine resolves a menu choice to an engine.
// Empty input selects the default silently; unknown input selects the default
// and returns ok=false so the caller can tell the user.
func SelectEngine(choice string) (engine models.Engine, ok bool) {
	choice = strings.TrimSpace(choice)
	if choice == "" {
		return DefaultEngine(), true
	}
	for _, e := range Engines {
		if e.Key == choice {
			return e, true
		}
	}
	return DefaultEngine(), false
}

// SearchURL returns the engine search URL for the dork.
// Spaces are encoded as '+'.
func SearchURL(engine models.Engine, dork string) string {
	return engine.BaseURL + url.QueryEscape(dork)
}
