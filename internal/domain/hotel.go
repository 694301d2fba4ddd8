package domain

type Hotel struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	City             string   `json:"city"`
	PricePerNight    float64  `json:"price_per_night"`
	Currency         string   `json:"currency"`
	Rating           float64  `json:"rating"`
	ShortDescription string   `json:"short_description"`
	Amenities        []string `json:"amenities"`
	Images           []string `json:"images"`
}
