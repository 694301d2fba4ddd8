package catalog

import "travel_catalog/internal/domain"

// Fixed snapshot keys, one blob per collection. These match the keys the
// original demo persisted under, so existing snapshots stay readable.
const (
	KeyTrips       = "travelApi_trips"
	KeyHotels      = "travelApi_hotels"
	KeyAttractions = "travelApi_attractions"
)

// supportedCities is scanned in this order by the chat responder; the
// first containment match wins regardless of position in the message.
var supportedCities = []string{"Goa", "Manali", "Shimla", "Mumbai"}

// SeedTrips returns a fresh copy of the shipped trip collection.
func SeedTrips() []domain.Trip {
	return []domain.Trip{
		{
			ID:               "trip_101",
			Title:            "Goa Beaches & Nightlife - 3N/4D",
			City:             "Goa",
			Duration:         "3N/4D",
			Price:            12999,
			Currency:         "INR",
			Rating:           4.5,
			ShortDescription: "Beach hopping, watersports and nightlife in North Goa",
			Highlights:       []string{"Baga Beach", "Parasailing", "Beach party"},
			Images:           []string{},
			Tags:             []string{"popular", "couples"},
			CreatedAt:        "2025-07-10T12:00:00Z",
			Itinerary: []domain.ItineraryDay{
				{Day: 1, Plan: "Arrive in Goa, check-in and beach relaxation"},
				{Day: 2, Plan: "Full day water sports and beach hopping"},
				{Day: 3, Plan: "Sightseeing and nightlife experience"},
				{Day: 4, Plan: "Departure"},
			},
		},
		{
			ID:               "trip_102",
			Title:            "Goa Family Package - 4N/5D",
			City:             "Goa",
			Duration:         "4N/5D",
			Price:            15999,
			Currency:         "INR",
			Rating:           4.1,
			ShortDescription: "Family-friendly beaches, cultural tours and relaxation",
			Highlights:       []string{"Family beaches", "Spice plantation", "Dolphin cruise"},
			Images:           []string{},
			Tags:             []string{"family", "cultural"},
			CreatedAt:        "2025-07-11T12:00:00Z",
		},
		{
			ID:               "trip_103",
			Title:            "Manali Adventure - 2N/3D",
			City:             "Manali",
			Duration:         "2N/3D",
			Price:            8999,
			Currency:         "INR",
			Rating:           4.6,
			ShortDescription: "Trekking, river rafting and mountain adventures",
			Highlights:       []string{"Rohtang Pass", "River rafting", "Hadimba Temple"},
			Images:           []string{},
			Tags:             []string{"adventure", "trekking"},
			CreatedAt:        "2025-07-12T12:00:00Z",
		},
		{
			ID:               "trip_104",
			Title:            "Mumbai City Explorer - 2N/3D",
			City:             "Mumbai",
			Duration:         "2N/3D",
			Price:            9999,
			Currency:         "INR",
			Rating:           4.3,
			ShortDescription: "Explore the city of dreams with iconic landmarks",
			Highlights:       []string{"Gateway of India", "Marine Drive", "Bollywood tour"},
			Images:           []string{},
			Tags:             []string{"city", "cultural"},
			CreatedAt:        "2025-07-13T12:00:00Z",
		},
		{
			ID:               "trip_105",
			Title:            "Shimla Heritage Walk - 3N/4D",
			City:             "Shimla",
			Duration:         "3N/4D",
			Price:            11999,
			Currency:         "INR",
			Rating:           4.4,
			ShortDescription: "Colonial architecture and hill station charm",
			Highlights:       []string{"Mall Road", "Toy train", "Kufri"},
			Images:           []string{},
			Tags:             []string{"heritage", "hills"},
			CreatedAt:        "2025-07-14T12:00:00Z",
		},
	}
}

// SeedHotels returns a fresh copy of the shipped hotel collection.
func SeedHotels() []domain.Hotel {
	return []domain.Hotel{
		{
			ID:               "hotel_201",
			Name:             "Seaside Comfort Hotel",
			City:             "Goa",
			PricePerNight:    2999,
			Currency:         "INR",
			Rating:           4.2,
			ShortDescription: "200m from the beach, breakfast included",
			Amenities:        []string{"WiFi", "Breakfast", "Pool"},
			Images:           []string{},
		},
		{
			ID:               "hotel_202",
			Name:             "Goa Budget Inn",
			City:             "Goa",
			PricePerNight:    1999,
			Currency:         "INR",
			Rating:           3.9,
			ShortDescription: "Affordable stay near Baga Beach",
			Amenities:        []string{"WiFi", "AC"},
			Images:           []string{},
		},
		{
			ID:               "hotel_203",
			Name:             "Hillside Retreat",
			City:             "Manali",
			PricePerNight:    3499,
			Currency:         "INR",
			Rating:           4.5,
			ShortDescription: "Mountain views & fireplace in every room",
			Amenities:        []string{"WiFi", "Fireplace", "Mountain view"},
			Images:           []string{},
		},
		{
			ID:               "hotel_204",
			Name:             "Mumbai Business Hotel",
			City:             "Mumbai",
			PricePerNight:    4999,
			Currency:         "INR",
			Rating:           4.1,
			ShortDescription: "Modern amenities in the heart of the city",
			Amenities:        []string{"WiFi", "Gym", "Business center"},
			Images:           []string{},
		},
		{
			ID:               "hotel_205",
			Name:             "Shimla Palace Hotel",
			City:             "Shimla",
			PricePerNight:    3999,
			Currency:         "INR",
			Rating:           4.3,
			ShortDescription: "Heritage hotel with colonial charm",
			Amenities:        []string{"WiFi", "Heritage architecture", "Valley view"},
			Images:           []string{},
		},
	}
}

// SeedAttractions returns a fresh copy of the shipped attraction collection.
func SeedAttractions() []domain.Attraction {
	return []domain.Attraction{
		{
			ID:               "attr_301",
			Name:             "Fort Aguada",
			City:             "Goa",
			LocationName:     "Sinquerim",
			ShortDescription: "17th-century Portuguese fort with lighthouse & sea views",
			Coords:           domain.Coords{Lat: 15.4978, Lon: 73.7624},
			Images:           []string{},
		},
		{
			ID:               "attr_302",
			Name:             "Baga Beach",
			City:             "Goa",
			LocationName:     "North Goa",
			ShortDescription: "Popular beach for watersports and nightlife",
			Coords:           domain.Coords{Lat: 15.5559, Lon: 73.7516},
			Images:           []string{},
		},
		{
			ID:               "attr_303",
			Name:             "Hadimba Temple",
			City:             "Manali",
			LocationName:     "Dhungiri Van Vihar",
			ShortDescription: "Ancient wooden temple dedicated to Hadimba Devi",
			Coords:           domain.Coords{Lat: 32.2396, Lon: 77.1887},
			Images:           []string{},
		},
		{
			ID:               "attr_304",
			Name:             "Gateway of India",
			City:             "Mumbai",
			LocationName:     "Colaba",
			ShortDescription: "Iconic arch monument overlooking the Arabian Sea",
			Coords:           domain.Coords{Lat: 18.9220, Lon: 72.8347},
			Images:           []string{},
		},
		{
			ID:               "attr_305",
			Name:             "Mall Road",
			City:             "Shimla",
			LocationName:     "The Ridge",
			ShortDescription: "Famous shopping street with colonial architecture",
			Coords:           domain.Coords{Lat: 31.1048, Lon: 77.1734},
			Images:           []string{},
		},
	}
}
