package catalog

import (
	"strings"

	"travel_catalog/internal/domain"
)

const defaultSearchLimit = 5

// Search matches q as a case-insensitive substring of name-or-title,
// short description or city, optionally narrowed to an exact city. The
// limit applies per collection, not in total. Collections excluded by
// the type selector come back empty, never nil.
func (s *Service) Search(q domain.SearchQuery) domain.SearchResult {
	typ := q.Type
	if typ == "" {
		typ = "all"
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	res := domain.SearchResult{
		Query:       q.Q,
		Trips:       []domain.Trip{},
		Hotels:      []domain.Hotel{},
		Attractions: []domain.Attraction{},
	}

	if typ == "all" || typ == "trips" {
		for _, t := range s.trips {
			if len(res.Trips) == limit {
				break
			}
			if matchesText(q.Q, t.Title, t.ShortDescription, t.City) && cityMatches(q.City, t.City) {
				res.Trips = append(res.Trips, t)
			}
		}
	}
	if typ == "all" || typ == "hotels" {
		for _, h := range s.hotels {
			if len(res.Hotels) == limit {
				break
			}
			if matchesText(q.Q, h.Name, h.ShortDescription, h.City) && cityMatches(q.City, h.City) {
				res.Hotels = append(res.Hotels, h)
			}
		}
	}
	if typ == "all" || typ == "attractions" {
		for _, a := range s.attractions {
			if len(res.Attractions) == limit {
				break
			}
			if matchesText(q.Q, a.Name, a.ShortDescription, a.City) && cityMatches(q.City, a.City) {
				res.Attractions = append(res.Attractions, a)
			}
		}
	}

	res.Total = len(res.Trips) + len(res.Hotels) + len(res.Attractions)
	return res
}

func cityMatches(want *string, have string) bool {
	return want == nil || strings.EqualFold(*want, have)
}
