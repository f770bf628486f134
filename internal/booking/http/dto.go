package http

import (
	"time"

	"rentacar-backend/internal/catalog"
)

// CreateBookingBody carries the booking form fields. Times arrive as local
// wall-clock strings, same as the search surface.
type CreateBookingBody struct {
	PickupLocationID string `json:"pickup_location_id"`
	ReturnLocationID string `json:"return_location_id"`
	Start            string `json:"start" binding:"required"`
	End              string `json:"end" binding:"required"`
}

type BookingResponse struct {
	ID               string    `json:"id"`
	CarID            string    `json:"car_id"`
	PickupLocationID string    `json:"pickup_location_id"`
	ReturnLocationID string    `json:"return_location_id"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewBookingResponse(b *catalog.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		CarID:            b.CarID,
		PickupLocationID: b.PickupLocationID,
		ReturnLocationID: b.ReturnLocationID,
		Start:            b.Start,
		End:              b.End,
		CreatedAt:        b.CreatedAt,
	}
}
