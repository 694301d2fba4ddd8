package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"travel_catalog/internal/domain"
)

const defaultListLimit = 10

// Service answers filter/sort/paginate queries, unified search, chat and
// booking requests against three in-memory collections. Collections are
// read-only after construction; there is no locking because nothing ever
// mutates them.
type Service struct {
	trips       []domain.Trip
	hotels      []domain.Hotel
	attractions []domain.Attraction
}

// New seeds the three collections, then replaces each one wholesale from
// its snapshot in store when the key exists (no merge). A nil store keeps
// the seed data active.
func New(ctx context.Context, store domain.SnapshotStore) (*Service, error) {
	s := &Service{
		trips:       SeedTrips(),
		hotels:      SeedHotels(),
		attractions: SeedAttractions(),
	}
	if store == nil {
		return s, nil
	}
	if err := loadInto(ctx, store, KeyTrips, &s.trips); err != nil {
		return nil, err
	}
	if err := loadInto(ctx, store, KeyHotels, &s.hotels); err != nil {
		return nil, err
	}
	if err := loadInto(ctx, store, KeyAttractions, &s.attractions); err != nil {
		return nil, err
	}
	return s, nil
}

func loadInto[T any](ctx context.Context, store domain.SnapshotStore, key string, dst *[]T) error {
	var snap []T
	ok, err := store.Load(ctx, key, &snap)
	if err != nil {
		return fmt.Errorf("load snapshot %s: %w", key, err)
	}
	if ok {
		*dst = snap
	}
	return nil
}

// Save writes all three collections to store under the fixed snapshot
// keys, replacing whatever is there.
func (s *Service) Save(ctx context.Context, store domain.SnapshotStore) error {
	if err := store.Save(ctx, KeyTrips, s.trips); err != nil {
		return fmt.Errorf("save snapshot %s: %w", KeyTrips, err)
	}
	if err := store.Save(ctx, KeyHotels, s.hotels); err != nil {
		return fmt.Errorf("save snapshot %s: %w", KeyHotels, err)
	}
	if err := store.Save(ctx, KeyAttractions, s.attractions); err != nil {
		return fmt.Errorf("save snapshot %s: %w", KeyAttractions, err)
	}
	return nil
}

// Cities returns the fixed supported-city list.
func (s *Service) Cities() []string {
	out := make([]string, len(supportedCities))
	copy(out, supportedCities)
	return out
}

// ListTrips applies every set filter conjunctively, sorts, then paginates.
func (s *Service) ListTrips(q domain.TripsQuery) domain.TripsPage {
	out := make([]domain.Trip, 0, len(s.trips))
	for _, t := range s.trips {
		if q.City != nil && !strings.EqualFold(t.City, *q.City) {
			continue
		}
		if q.Q != nil && !matchesText(*q.Q, t.Title, t.ShortDescription) {
			continue
		}
		if q.MinPrice != nil && t.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && t.Price > *q.MaxPrice {
			continue
		}
		if q.Duration != nil && t.Duration != *q.Duration {
			continue
		}
		if q.Tags != nil && !anyTagMatches(t.Tags, *q.Tags) {
			continue
		}
		out = append(out, t)
	}

	switch q.Sort {
	case "price_asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "price_desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case "rating_desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}

	items, meta := paginate(out, q.Limit, q.Page)
	return domain.TripsPage{Items: items, Meta: meta}
}

func (s *Service) ListHotels(q domain.HotelsQuery) domain.HotelsPage {
	out := make([]domain.Hotel, 0, len(s.hotels))
	for _, h := range s.hotels {
		if q.City != nil && !strings.EqualFold(h.City, *q.City) {
			continue
		}
		if q.MinPrice != nil && h.PricePerNight < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && h.PricePerNight > *q.MaxPrice {
			continue
		}
		if q.Rating != nil && h.Rating < *q.Rating {
			continue
		}
		out = append(out, h)
	}

	switch q.Sort {
	case "price_asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].PricePerNight < out[j].PricePerNight })
	case "price_desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].PricePerNight > out[j].PricePerNight })
	case "rating_desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}

	items, meta := paginate(out, q.Limit, q.Page)
	return domain.HotelsPage{Items: items, Meta: meta}
}

func (s *Service) ListAttractions(q domain.AttractionsQuery) domain.AttractionsPage {
	out := make([]domain.Attraction, 0, len(s.attractions))
	for _, a := range s.attractions {
		if q.City != nil && !strings.EqualFold(a.City, *q.City) {
			continue
		}
		out = append(out, a)
	}
	items, meta := paginate(out, q.Limit, q.Page)
	return domain.AttractionsPage{Items: items, Meta: meta}
}

func (s *Service) GetTrip(id string) (domain.Trip, error) {
	for _, t := range s.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Trip{}, &domain.NotFoundError{Kind: "trip", ID: id}
}

func (s *Service) GetHotel(id string) (domain.Hotel, error) {
	for _, h := range s.hotels {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hotel{}, &domain.NotFoundError{Kind: "hotel", ID: id}
}

func (s *Service) GetAttraction(id string) (domain.Attraction, error) {
	for _, a := range s.attractions {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Attraction{}, &domain.NotFoundError{Kind: "attraction", ID: id}
}

// matchesText reports whether needle occurs (case-insensitively) in any
// of the haystacks.
func matchesText(needle string, haystacks ...string) bool {
	n := strings.ToLower(needle)
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), n) {
			return true
		}
	}
	return false
}

// anyTagMatches reports whether any of the trip's tags equals any of the
// requested comma-separated tags, case-insensitively.
func anyTagMatches(tags []string, requested string) bool {
	for _, want := range strings.Split(requested, ",") {
		want = strings.TrimSpace(want)
		if want == "" {
			continue
		}
		for _, have := range tags {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}

// paginate slices items to the requested page. Out-of-range pages yield
// an empty slice; Total and Pages always describe the pre-slice set.
func paginate[T any](items []T, limit, page int) ([]T, domain.PageMeta) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if page <= 0 {
		page = 1
	}
	total := len(items)
	pages := (total + limit - 1) / limit
	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return items[offset:end], domain.PageMeta{Total: total, Page: page, Limit: limit, Pages: pages}
}
