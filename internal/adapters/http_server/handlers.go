package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"travel_catalog/internal/adapters/observability"
	"travel_catalog/internal/catalog"
	"travel_catalog/internal/domain"
)

type Handlers struct{ Catalog *catalog.Service }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// envelope mirrors the demo's wire format: payload under "data", page
// or count metadata under "meta".
type envelope struct {
	Data any `json:"data"`
	Meta any `json:"meta,omitempty"`
}

type searchEnvelope struct {
	Query   string `json:"query"`
	Results struct {
		Trips       []domain.Trip       `json:"trips"`
		Hotels      []domain.Hotel      `json:"hotels"`
		Attractions []domain.Attraction `json:"attractions"`
	} `json:"results"`
	Meta struct {
		Total int `json:"total"`
	} `json:"meta"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/cities", h.cities)
	s.mux.Get("/v1/trips", h.listTrips)
	s.mux.Get("/v1/trips/{id}", h.getTrip)
	s.mux.Get("/v1/hotels", h.listHotels)
	s.mux.Get("/v1/hotels/{id}", h.getHotel)
	s.mux.Get("/v1/attractions", h.listAttractions)
	s.mux.Get("/v1/attractions/{id}", h.getAttraction)
	s.mux.Get("/v1/search", h.search)
	s.mux.Post("/v1/chat", h.chat)
	s.mux.Post("/v1/bookings", h.createBooking)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeWithETag(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// ---- query-param parsing ----

func qStr(vals url.Values, key string) *string {
	if v := vals.Get(key); v != "" {
		return &v
	}
	return nil
}

func qFloat(vals url.Values, key string) (*float64, error) {
	v := vals.Get(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func qInt(vals url.Values, key string) (int, error) {
	v := vals.Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errors.New(key + " must be a non-negative integer")
	}
	return n, nil
}

// ---- handlers ----

func (h *Handlers) cities(w http.ResponseWriter, r *http.Request) {
	cities := h.Catalog.Cities()
	writeJSON(w, http.StatusOK, envelope{
		Data: cities,
		Meta: map[string]int{"count": len(cities)},
	})
}

func (h *Handlers) listTrips(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	q := domain.TripsQuery{
		City:     qStr(vals, "city"),
		Q:        qStr(vals, "q"),
		Duration: qStr(vals, "duration"),
		Tags:     qStr(vals, "tags"),
		Sort:     vals.Get("sort"),
	}
	var err error
	if q.MinPrice, err = qFloat(vals, "minPrice"); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid minPrice", "minPrice must be a number")
		return
	}
	if q.MaxPrice, err = qFloat(vals, "maxPrice"); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid maxPrice", "maxPrice must be a number")
		return
	}
	if q.Limit, err = qInt(vals, "limit"); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid limit", err.Error())
		return
	}
	if q.Page, err = qInt(vals, "page"); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid page", err.Error())
		return
	}

	page := h.Catalog.ListTrips(q)
	writeJSON(w, http.StatusOK, envelope{Data: page.Items, Meta: page.Meta})
}

func (h *Handlers) getTrip(w http.ResponseWriter, r *http.Request) {
	t, err := h.Catalog.GetTrip(chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
		return
	}
	writeWithETag(w, r, envelope{Data: t})
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	q := domain.HotelsQuery{
		City: qStr(vals, "city"),
		Sort: vals.Get("sort"),
	}
	var err error
	if q.MinPrice, err = qFloat(vals, "minPrice"); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid minPrice", "minPrice must be a number")
		return
	}
	if q.MaxPrice, err = qFloat(vals, "maxPrice"); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid maxPrice", "maxPrice must be a number")
		return
	}
	if q.Rating, err = qFloat(vals, "rating"); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid rating", "rating must be a number")
		return
	}
	if q.Limit, err = qInt(vals, "limit"); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid limit", err.Error())
		return
	}
	if q.Page, err = qInt(vals, "page"); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid page", err.Error())
		return
	}

	page := h.Catalog.ListHotels(q)
	writeJSON(w, http.StatusOK, envelope{Data: page.Items, Meta: page.Meta})
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Catalog.GetHotel(chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
		return
	}
	writeWithETag(w, r, envelope{Data: hotel})
}

func (h *Handlers) listAttractions(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	q := domain.AttractionsQuery{City: qStr(vals, "city")}
	var err error
	if q.Limit, err = qInt(vals, "limit"); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid limit", err.Error())
		return
	}
	if q.Page, err = qInt(vals, "page"); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid page", err.Error())
		return
	}

	page := h.Catalog.ListAttractions(q)
	writeJSON(w, http.StatusOK, envelope{Data: page.Items, Meta: page.Meta})
}

func (h *Handlers) getAttraction(w http.ResponseWriter, r *http.Request) {
	a, err := h.Catalog.GetAttraction(chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
		return
	}
	writeWithETag(w, r, envelope{Data: a})
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	q := domain.SearchQuery{
		Q:    vals.Get("q"),
		City: qStr(vals, "city"),
		Type: vals.Get("type"),
	}
	var err error
	if q.Limit, err = qInt(vals, "limit"); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid limit", err.Error())
		return
	}

	res := h.Catalog.Search(q)
	var out searchEnvelope
	out.Query = res.Query
	out.Results.Trips = res.Trips
	out.Results.Hotels = res.Hotels
	out.Results.Attractions = res.Attractions
	out.Meta.Total = res.Total
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) chat(w http.ResponseWriter, r *http.Request) {
	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "expected a JSON object with a message field")
		return
	}
	resp := h.Catalog.Chat(req)
	observability.ObserveChatIntent(resp.Intent)
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "expected a JSON booking request")
		return
	}
	writeJSON(w, http.StatusCreated, h.Catalog.CreateBooking(req))
}
