package domain

type Attraction struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	City             string   `json:"city"`
	LocationName     string   `json:"location_name"`
	ShortDescription string   `json:"short_description"`
	Coords           Coords   `json:"coords"`
	Images           []string `json:"images"`
}

type Coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
