package domain

import "context"

// SnapshotStore persists whole collections as independently keyed JSON
// blobs. There is no merge and no versioning: Save overwrites the blob,
// Load reports an absent key as a miss rather than an error.
type SnapshotStore interface {
	Load(ctx context.Context, key string, dst any) (bool, error)
	Save(ctx context.Context, key string, v any) error
}

// Queries. Pointer fields are optional; nil means unset/unbounded.
// Limit and Page are normalized by the catalog service (10 and 1).

type TripsQuery struct {
	City     *string
	Q        *string // substring over title OR short_description
	MinPrice *float64
	MaxPrice *float64
	Duration *string
	Tags     *string // comma-separated; matches if ANY tag matches
	Sort     string  // price_asc | price_desc | rating_desc
	Limit    int
	Page     int // 1-indexed
}

type HotelsQuery struct {
	City     *string
	MinPrice *float64
	MaxPrice *float64
	Rating   *float64 // inclusive lower bound
	Sort     string
	Limit    int
	Page     int
}

type AttractionsQuery struct {
	City  *string
	Limit int
	Page  int
}

type PageMeta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

type TripsPage struct {
	Items []Trip
	Meta  PageMeta
}

type HotelsPage struct {
	Items []Hotel
	Meta  PageMeta
}

type AttractionsPage struct {
	Items []Attraction
	Meta  PageMeta
}

// SearchQuery hits all three collections; Limit applies per collection,
// not in total.
type SearchQuery struct {
	Q     string
	City  *string
	Type  string // trips | hotels | attractions | all
	Limit int
}

type SearchResult struct {
	Query       string
	Trips       []Trip
	Hotels      []Hotel
	Attractions []Attraction
	Total       int
}
