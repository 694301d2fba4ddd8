package domain

// Trip is one packaged tour. Records are immutable once loaded; the
// catalog only ever replaces whole collections, never single records.
type Trip struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	City             string         `json:"city"`
	Duration         string         `json:"duration"`
	Price            float64        `json:"price"`
	Currency         string         `json:"currency"`
	Rating           float64        `json:"rating"`
	ShortDescription string         `json:"short_description"`
	Highlights       []string       `json:"highlights"`
	Images           []string       `json:"images"`
	Tags             []string       `json:"tags"`
	CreatedAt        string         `json:"created_at"`
	Itinerary        []ItineraryDay `json:"itinerary,omitempty"`
}

type ItineraryDay struct {
	Day  int    `json:"day"`
	Plan string `json:"plan"`
}
