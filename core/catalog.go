package core

import (
	"strings"

	"github.com/cinedesk/v2/internal/types"
)

// FilterMovies narrows an already-fetched movie list. The query
// matches case-insensitively across title, genre and language;
// minRating drops movies rated below it. Zero values match all.
func FilterMovies(movies []types.Movie, query string, minRating float64) []types.Movie {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []types.Movie
	for _, m := range movies {
		if minRating > 0 && m.Rating < minRating {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(m.Title), q) &&
			!strings.Contains(strings.ToLower(m.Genre), q) &&
			!strings.Contains(strings.ToLower(m.Language), q) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// FilterCinemas narrows an already-fetched cinema list by a free-text
// query over name, address and city.
func FilterCinemas(cinemas []types.Cinema, query string) []types.Cinema {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return cinemas
	}
	var out []types.Cinema
	for _, c := range cinemas {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Address), q) ||
			strings.Contains(strings.ToLower(c.City), q) {
			out = append(out, c)
		}
	}
	return out
}
