package catalog

import (
	"fmt"
	"time"

	"travel_catalog/internal/domain"
)

// CreateBooking is a demo stub: it always succeeds, does not validate
// the item id against the catalog, and derives the booking id from
// wall-clock millis (not collision-proof, fine for a demo).
func (s *Service) CreateBooking(req domain.BookingRequest) domain.Booking {
	return domain.Booking{
		BookingID: fmt.Sprintf("bk_%d", time.Now().UnixMilli()),
		Status:    "pending",
		Message:   "Booking created (demo only)",
	}
}
