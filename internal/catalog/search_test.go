package catalog_test

import (
	"reflect"
	"testing"

	"travel_catalog/internal/domain"
)

func TestSearch_GoaAcrossAllCollections(t *testing.T) {
	svc := seedService(t)

	res := svc.Search(domain.SearchQuery{Q: "Goa"})
	if got := tripIDs(res.Trips); !reflect.DeepEqual(got, []string{"trip_101", "trip_102"}) {
		t.Fatalf("trips: %v", got)
	}
	if len(res.Hotels) != 2 || res.Hotels[0].ID != "hotel_201" || res.Hotels[1].ID != "hotel_202" {
		t.Fatalf("hotels: %+v", res.Hotels)
	}
	if len(res.Attractions) != 2 || res.Attractions[0].ID != "attr_301" || res.Attractions[1].ID != "attr_302" {
		t.Fatalf("attractions: %+v", res.Attractions)
	}
	if res.Total != 6 {
		t.Fatalf("total: %d", res.Total)
	}
}

func TestSearch_TypeSelectorReturnsOthersEmpty(t *testing.T) {
	svc := seedService(t)

	res := svc.Search(domain.SearchQuery{Q: "Goa", Type: "hotels"})
	if len(res.Hotels) != 2 || res.Total != 2 {
		t.Fatalf("hotels only: %+v total %d", res.Hotels, res.Total)
	}
	// unselected collections are empty, not nil (they serialize as [])
	if res.Trips == nil || len(res.Trips) != 0 {
		t.Fatalf("trips should be empty non-nil: %#v", res.Trips)
	}
	if res.Attractions == nil || len(res.Attractions) != 0 {
		t.Fatalf("attractions should be empty non-nil: %#v", res.Attractions)
	}
}

func TestSearch_LimitIsPerCollection(t *testing.T) {
	svc := seedService(t)

	// empty q matches everything; limit caps each collection separately
	res := svc.Search(domain.SearchQuery{Q: "", Limit: 2})
	if len(res.Trips) != 2 || len(res.Hotels) != 2 || len(res.Attractions) != 2 {
		t.Fatalf("per-collection limit: %d/%d/%d", len(res.Trips), len(res.Hotels), len(res.Attractions))
	}
	if res.Total != 6 {
		t.Fatalf("total counts returned items, got %d", res.Total)
	}
}

func TestSearch_CityNarrowsMatches(t *testing.T) {
	svc := seedService(t)

	// "beach" text-matches records in several cities; city pins Goa
	res := svc.Search(domain.SearchQuery{Q: "beach", City: ptr("Goa")})
	for _, tr := range res.Trips {
		if tr.City != "Goa" {
			t.Fatalf("trip outside Goa: %+v", tr)
		}
	}
	for _, h := range res.Hotels {
		if h.City != "Goa" {
			t.Fatalf("hotel outside Goa: %+v", h)
		}
	}
	if res.Total == 0 {
		t.Fatalf("expected matches for beach in Goa")
	}
}

func TestSearch_NoMatchesIsEmptySuccess(t *testing.T) {
	svc := seedService(t)
	res := svc.Search(domain.SearchQuery{Q: "zanzibar"})
	if res.Total != 0 || len(res.Trips) != 0 || len(res.Hotels) != 0 || len(res.Attractions) != 0 {
		t.Fatalf("expected empty result: %+v", res)
	}
}
