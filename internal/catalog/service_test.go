package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"travel_catalog/internal/catalog"
	"travel_catalog/internal/domain"
)

// ---- fakes ----

type fakeStore struct {
	blobs map[string][]byte
	saved []string
}

func (f *fakeStore) Load(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := f.blobs[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (f *fakeStore) Save(ctx context.Context, key string, v any) error {
	if f.blobs == nil {
		f.blobs = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f.blobs[key] = b
	f.saved = append(f.saved, key)
	return nil
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func seedService(t *testing.T) *catalog.Service {
	t.Helper()
	svc, err := catalog.New(context.Background(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc
}

func ptr[T any](v T) *T { return &v }

func tripIDs(ts []domain.Trip) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

// ---- construction / snapshots ----

func TestNew_SnapshotReplacesOnlyItsCollection(t *testing.T) {
	store := &fakeStore{blobs: map[string][]byte{}}
	store.blobs[catalog.KeyTrips] = mustJSON(t, []domain.Trip{
		{ID: "trip_901", Title: "Custom Trip", City: "Goa", Price: 100, Rating: 5},
	})

	svc, err := catalog.New(context.Background(), store)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	trips := svc.ListTrips(domain.TripsQuery{})
	if trips.Meta.Total != 1 || trips.Items[0].ID != "trip_901" {
		t.Fatalf("expected snapshot trips, got %+v", trips.Items)
	}

	// hotels and attractions had no snapshot key; seeds stay active
	hotels := svc.ListHotels(domain.HotelsQuery{})
	if hotels.Meta.Total != 5 {
		t.Fatalf("expected 5 seed hotels, got %d", hotels.Meta.Total)
	}
	attrs := svc.ListAttractions(domain.AttractionsQuery{})
	if attrs.Meta.Total != 5 {
		t.Fatalf("expected 5 seed attractions, got %d", attrs.Meta.Total)
	}
}

func TestNew_StoreErrorSurfaces(t *testing.T) {
	store := &fakeStore{blobs: map[string][]byte{
		catalog.KeyTrips: []byte("{not json"),
	}}
	if _, err := catalog.New(context.Background(), store); err == nil {
		t.Fatalf("expected error for corrupt snapshot")
	}
}

func TestSave_WritesAllThreeKeys(t *testing.T) {
	svc := seedService(t)
	store := &fakeStore{}
	if err := svc.Save(context.Background(), store); err != nil {
		t.Fatalf("Save: %v", err)
	}
	want := []string{catalog.KeyTrips, catalog.KeyHotels, catalog.KeyAttractions}
	if !reflect.DeepEqual(store.saved, want) {
		t.Fatalf("saved keys %v, want %v", store.saved, want)
	}
}

// ---- trips ----

func TestListTrips_FiltersAreConjunctive(t *testing.T) {
	svc := seedService(t)

	goa := svc.ListTrips(domain.TripsQuery{City: ptr("goa")}) // case-insensitive
	if got := tripIDs(goa.Items); !reflect.DeepEqual(got, []string{"trip_101", "trip_102"}) {
		t.Fatalf("city filter: %v", got)
	}

	beach := svc.ListTrips(domain.TripsQuery{Q: ptr("BEACH")})
	if got := tripIDs(beach.Items); !reflect.DeepEqual(got, []string{"trip_101", "trip_102"}) {
		t.Fatalf("q filter: %v", got)
	}

	tagged := svc.ListTrips(domain.TripsQuery{Tags: ptr("adventure, heritage")})
	if got := tripIDs(tagged.Items); !reflect.DeepEqual(got, []string{"trip_103", "trip_105"}) {
		t.Fatalf("tags filter: %v", got)
	}

	short := svc.ListTrips(domain.TripsQuery{Duration: ptr("2N/3D")})
	if got := tripIDs(short.Items); !reflect.DeepEqual(got, []string{"trip_103", "trip_104"}) {
		t.Fatalf("duration filter: %v", got)
	}

	// bounds are inclusive
	capped := svc.ListTrips(domain.TripsQuery{MinPrice: ptr(12999.0), MaxPrice: ptr(12999.0)})
	if got := tripIDs(capped.Items); !reflect.DeepEqual(got, []string{"trip_101"}) {
		t.Fatalf("price bounds: %v", got)
	}

	// AND semantics across fields
	combined := svc.ListTrips(domain.TripsQuery{City: ptr("Goa"), MaxPrice: ptr(13000.0)})
	if got := tripIDs(combined.Items); !reflect.DeepEqual(got, []string{"trip_101"}) {
		t.Fatalf("combined filters: %v", got)
	}

	none := svc.ListTrips(domain.TripsQuery{City: ptr("Paris")})
	if none.Meta.Total != 0 || len(none.Items) != 0 {
		t.Fatalf("zero matches should be a valid empty result: %+v", none)
	}
}

func TestListTrips_Sorting(t *testing.T) {
	svc := seedService(t)

	asc := svc.ListTrips(domain.TripsQuery{Sort: "price_asc"})
	for i := 1; i < len(asc.Items); i++ {
		if asc.Items[i-1].Price > asc.Items[i].Price {
			t.Fatalf("price_asc not monotonic at %d: %v", i, tripIDs(asc.Items))
		}
	}

	desc := svc.ListTrips(domain.TripsQuery{Sort: "price_desc"})
	if desc.Items[0].ID != "trip_102" || desc.Items[len(desc.Items)-1].ID != "trip_103" {
		t.Fatalf("price_desc order: %v", tripIDs(desc.Items))
	}

	rating := svc.ListTrips(domain.TripsQuery{Sort: "rating_desc"})
	if rating.Items[0].ID != "trip_103" {
		t.Fatalf("rating_desc order: %v", tripIDs(rating.Items))
	}
}

func TestListTrips_SortStability(t *testing.T) {
	// seed via snapshot so two trips tie on price
	store := &fakeStore{blobs: map[string][]byte{}}
	store.blobs[catalog.KeyTrips] = mustJSON(t, []domain.Trip{
		{ID: "t1", Price: 500, Rating: 4},
		{ID: "t2", Price: 100, Rating: 4},
		{ID: "t3", Price: 500, Rating: 4},
	})
	svc, err := catalog.New(context.Background(), store)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out := svc.ListTrips(domain.TripsQuery{Sort: "price_asc"})
	if got := tripIDs(out.Items); !reflect.DeepEqual(got, []string{"t2", "t1", "t3"}) {
		t.Fatalf("ties must keep pre-sort order: %v", got)
	}

	// rating all equal: order must be untouched
	out = svc.ListTrips(domain.TripsQuery{Sort: "rating_desc"})
	if got := tripIDs(out.Items); !reflect.DeepEqual(got, []string{"t1", "t2", "t3"}) {
		t.Fatalf("full-tie sort must be a no-op: %v", got)
	}
}

func TestListTrips_Pagination(t *testing.T) {
	svc := seedService(t)

	p1 := svc.ListTrips(domain.TripsQuery{Limit: 2, Page: 1})
	if len(p1.Items) != 2 || p1.Meta.Total != 5 || p1.Meta.Pages != 3 {
		t.Fatalf("page 1: %+v", p1.Meta)
	}

	p3 := svc.ListTrips(domain.TripsQuery{Limit: 2, Page: 3})
	if len(p3.Items) != 1 || p3.Meta.Total != 5 {
		t.Fatalf("page 3: %d items, meta %+v", len(p3.Items), p3.Meta)
	}

	// beyond the last page: empty, not an error, total unchanged
	p9 := svc.ListTrips(domain.TripsQuery{Limit: 2, Page: 9})
	if len(p9.Items) != 0 || p9.Meta.Total != 5 || p9.Meta.Pages != 3 {
		t.Fatalf("out-of-range page: %d items, meta %+v", len(p9.Items), p9.Meta)
	}

	// defaults: limit 10, page 1
	all := svc.ListTrips(domain.TripsQuery{})
	if len(all.Items) != 5 || all.Meta.Limit != 10 || all.Meta.Page != 1 || all.Meta.Pages != 1 {
		t.Fatalf("defaults: %+v", all.Meta)
	}
}

func TestListTrips_Idempotent(t *testing.T) {
	svc := seedService(t)
	q := domain.TripsQuery{City: ptr("Goa"), Sort: "price_asc"}
	a := svc.ListTrips(q)
	b := svc.ListTrips(q)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical queries must return identical results")
	}
}

// ---- hotels / attractions ----

func TestListHotels_RatingAndSort(t *testing.T) {
	svc := seedService(t)

	rated := svc.ListHotels(domain.HotelsQuery{Rating: ptr(4.2)})
	if rated.Meta.Total != 3 {
		t.Fatalf("rating >= 4.2 should match 3 hotels, got %d", rated.Meta.Total)
	}

	desc := svc.ListHotels(domain.HotelsQuery{Sort: "price_desc"})
	if desc.Items[0].ID != "hotel_204" || desc.Items[len(desc.Items)-1].ID != "hotel_202" {
		t.Fatalf("price_desc order wrong: first %s", desc.Items[0].ID)
	}

	cheap := svc.ListHotels(domain.HotelsQuery{City: ptr("Goa"), MaxPrice: ptr(2000.0)})
	if cheap.Meta.Total != 1 || cheap.Items[0].ID != "hotel_202" {
		t.Fatalf("goa under 2000: %+v", cheap.Items)
	}
}

func TestListAttractions_CityFilter(t *testing.T) {
	svc := seedService(t)
	out := svc.ListAttractions(domain.AttractionsQuery{City: ptr("goa")})
	if out.Meta.Total != 2 {
		t.Fatalf("expected 2 Goa attractions, got %d", out.Meta.Total)
	}
}

// ---- single-record lookups ----

func TestGet_KnownAndUnknownIDs(t *testing.T) {
	svc := seedService(t)

	trip, err := svc.GetTrip("trip_101")
	if err != nil || trip.Title != "Goa Beaches & Nightlife - 3N/4D" {
		t.Fatalf("GetTrip known id: %+v, %v", trip, err)
	}

	_, err = svc.GetTrip("trip_999")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.Kind != "trip" || nf.ID != "trip_999" {
		t.Fatalf("NotFoundError fields: %+v", nf)
	}

	if _, err := svc.GetHotel("hotel_203"); err != nil {
		t.Fatalf("GetHotel: %v", err)
	}
	if _, err := svc.GetAttraction("attr_305"); err != nil {
		t.Fatalf("GetAttraction: %v", err)
	}
	if _, err := svc.GetAttraction("trip_101"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("ids are scoped per collection, got %v", err)
	}
}

// ---- booking stub ----

func TestCreateBooking_AlwaysSucceeds(t *testing.T) {
	svc := seedService(t)
	b := svc.CreateBooking(domain.BookingRequest{
		UserID: "u1", ItemType: "trip", ItemID: "does_not_exist", Guests: 2, StartDate: "2026-01-01",
	})
	if !strings.HasPrefix(b.BookingID, "bk_") {
		t.Fatalf("booking id %q", b.BookingID)
	}
	if b.Status != "pending" || b.Message != "Booking created (demo only)" {
		t.Fatalf("unexpected booking: %+v", b)
	}
}
