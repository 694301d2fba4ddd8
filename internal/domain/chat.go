package domain

type ChatRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message"`
}

// Card is a type-tagged summary of one record, renderable without a
// follow-up lookup. Type is text, trip, hotel or attraction; only the
// fields relevant to that type are set.
type Card struct {
	Type             string   `json:"type"`
	Text             string   `json:"text,omitempty"`
	ID               string   `json:"id,omitempty"`
	Title            string   `json:"title,omitempty"`
	Name             string   `json:"name,omitempty"`
	Price            *float64 `json:"price,omitempty"`
	PricePerNight    *float64 `json:"price_per_night,omitempty"`
	Rating           *float64 `json:"rating,omitempty"`
	ShortDescription string   `json:"short_description,omitempty"`
}

type ChatReply struct {
	Reply       string   `json:"reply"`
	Messages    []Card   `json:"messages"`
	Cards       []Card   `json:"cards"`
	Suggestions []string `json:"suggestions"`

	// Intent labels which rule answered (trips, hotels, attractions,
	// city_only, no_city). Not part of the wire format.
	Intent string `json:"-"`
}

type BookingRequest struct {
	UserID    string `json:"userId"`
	ItemType  string `json:"itemType"` // trip | hotel; not validated
	ItemID    string `json:"itemId"`
	Guests    int    `json:"guests"`
	StartDate string `json:"startDate"`
}

type Booking struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}
