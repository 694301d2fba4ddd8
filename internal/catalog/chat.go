package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"travel_catalog/internal/domain"
)

// chatCardLimit caps the cards emitted per reply.
const chatCardLimit = 3

// priceCapRe extracts an integer price ceiling ("under 13000").
var priceCapRe = regexp.MustCompile(`(?:under|below|less than) (\d+)`)

// intentRule pairs a keyword set with its handler. Rules are evaluated
// in slice order; only the first rule whose keywords hit the message is
// acted on, even when several would match.
type intentRule struct {
	name     string
	keywords []string
	respond  func(s *Service, city string, maxPrice *float64, r *domain.ChatReply)
}

var intentRules = []intentRule{
	{name: "trips", keywords: []string{"trip", "package", "tour"}, respond: (*Service).chatTrips},
	{name: "hotels", keywords: []string{"hotel", "stay", "accommodation"}, respond: (*Service).chatHotels},
	{name: "attractions", keywords: []string{"visit", "see", "attraction", "places"}, respond: (*Service).chatAttractions},
}

// Chat is a deterministic rule-based responder; it never fails. City
// detection is plain substring containment (not word-boundary aware),
// scanning supportedCities in list order and taking the first hit.
func (s *Service) Chat(req domain.ChatRequest) domain.ChatReply {
	msg := strings.ToLower(strings.TrimSpace(req.Message))

	var city string
	for _, c := range supportedCities {
		if strings.Contains(msg, strings.ToLower(c)) {
			city = c
			break
		}
	}

	var maxPrice *float64
	if m := priceCapRe.FindStringSubmatch(msg); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			v := float64(n)
			maxPrice = &v
		}
	}

	r := domain.ChatReply{
		Cards: []domain.Card{},
		Suggestions: []string{
			"Show trips to Goa",
			"Best hotels in Manali",
			"What to visit in Mumbai",
		},
	}

	switch {
	case city == "":
		r.Intent = "no_city"
		r.Reply = "I can help you find trips, hotels, and attractions. Which city are you interested in?"
		r.Suggestions = append(r.Suggestions,
			"Show trips to Goa",
			"Best hotels in Manali",
			"What to visit in Mumbai",
			"Attractions in Shimla",
		)
	default:
		rule := matchIntent(msg)
		if rule == nil {
			r.Intent = "city_only"
			r.Reply = city + " is a wonderful destination! What would you like to know about it?"
			r.Suggestions = append(r.Suggestions,
				"Show trips to "+city,
				"Best hotels in "+city,
				"What to visit in "+city,
			)
		} else {
			r.Intent = rule.name
			rule.respond(s, city, maxPrice, &r)
		}
	}

	r.Messages = []domain.Card{{Type: "text", Text: r.Reply}}
	return r
}

func matchIntent(msg string) *intentRule {
	for i := range intentRules {
		for _, kw := range intentRules[i].keywords {
			if strings.Contains(msg, kw) {
				return &intentRules[i]
			}
		}
	}
	return nil
}

func (s *Service) chatTrips(city string, maxPrice *float64, r *domain.ChatReply) {
	var picks []domain.Trip
	for _, t := range s.trips {
		if len(picks) == chatCardLimit {
			break
		}
		if !strings.EqualFold(t.City, city) {
			continue
		}
		if maxPrice != nil && t.Price > *maxPrice {
			continue
		}
		picks = append(picks, t)
	}

	if len(picks) == 0 {
		r.Reply = fmt.Sprintf("Sorry, I couldn't find any trips to %s%s. Try different criteria.", city, priceSuffix(maxPrice))
		return
	}

	r.Reply = fmt.Sprintf("I found %d amazing trip%s to %s%s:", len(picks), plural(len(picks)), city, priceSuffix(maxPrice))
	for _, t := range picks {
		r.Cards = append(r.Cards, domain.Card{
			Type:             "trip",
			ID:               t.ID,
			Title:            t.Title,
			Price:            &t.Price,
			Rating:           &t.Rating,
			ShortDescription: t.ShortDescription,
		})
	}
	r.Suggestions = append(r.Suggestions, "Show hotels in "+city, "Attractions in "+city)
}

func (s *Service) chatHotels(city string, maxPrice *float64, r *domain.ChatReply) {
	var picks []domain.Hotel
	for _, h := range s.hotels {
		if len(picks) == chatCardLimit {
			break
		}
		if !strings.EqualFold(h.City, city) {
			continue
		}
		if maxPrice != nil && h.PricePerNight > *maxPrice {
			continue
		}
		picks = append(picks, h)
	}

	if len(picks) == 0 {
		r.Reply = fmt.Sprintf("Sorry, I couldn't find any hotels in %s%s. Try different criteria.", city, priceSuffix(maxPrice))
		return
	}

	r.Reply = fmt.Sprintf("Here are %d great hotel%s in %s%s:", len(picks), plural(len(picks)), city, priceSuffix(maxPrice))
	for _, h := range picks {
		r.Cards = append(r.Cards, domain.Card{
			Type:             "hotel",
			ID:               h.ID,
			Name:             h.Name,
			PricePerNight:    &h.PricePerNight,
			Rating:           &h.Rating,
			ShortDescription: h.ShortDescription,
		})
	}
	r.Suggestions = append(r.Suggestions, "Show trips to "+city, "Attractions in "+city)
}

// chatAttractions ignores the price cap; attractions carry no price.
func (s *Service) chatAttractions(city string, _ *float64, r *domain.ChatReply) {
	var picks []domain.Attraction
	for _, a := range s.attractions {
		if len(picks) == chatCardLimit {
			break
		}
		if strings.EqualFold(a.City, city) {
			picks = append(picks, a)
		}
	}

	if len(picks) == 0 {
		r.Reply = fmt.Sprintf("Sorry, I don't have attraction information for %s yet.", city)
		return
	}

	r.Reply = fmt.Sprintf("Here are top places to visit in %s:", city)
	for _, a := range picks {
		r.Cards = append(r.Cards, domain.Card{
			Type:             "attraction",
			ID:               a.ID,
			Name:             a.Name,
			ShortDescription: a.ShortDescription,
		})
	}
	r.Suggestions = append(r.Suggestions, "Show trips to "+city, "Hotels in "+city)
}

func priceSuffix(maxPrice *float64) string {
	if maxPrice == nil {
		return ""
	}
	return fmt.Sprintf(" under ₹%d", int(*maxPrice))
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
