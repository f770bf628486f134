package http

import (
	"time"

	"rentacar-backend/internal/catalog"
	"rentacar-backend/internal/pkg/money"
	"rentacar-backend/internal/pricing"
)

type LocationResponse struct {
	ID   string `json:"id"`
	City string `json:"city"`
	Name string `json:"name"`
}

func NewLocationResponse(l catalog.Location) LocationResponse {
	return LocationResponse{ID: l.ID, City: l.City, Name: l.Name}
}

type CarResponse struct {
	ID                string   `json:"id"`
	Make              string   `json:"make"`
	Model             string   `json:"model"`
	Year              int      `json:"year"`
	Fuel              string   `json:"fuel"`
	Transmission      string   `json:"transmission"`
	Seats             int      `json:"seats"`
	PricePerHour      float64  `json:"price_per_hour"`
	PickupLocationIDs []string `json:"pickup_location_ids"`
	ReturnLocationIDs []string `json:"return_location_ids"`
	ImageURL          string   `json:"image_url,omitempty"`
	BookingCount      int      `json:"booking_count"`
}

func NewCarResponse(c *catalog.Car) CarResponse {
	return CarResponse{
		ID:                c.ID,
		Make:              c.Make,
		Model:             c.Model,
		Year:              c.Year,
		Fuel:              string(c.Fuel),
		Transmission:      string(c.Transmission),
		Seats:             c.Seats,
		PricePerHour:      c.PricePerHour,
		PickupLocationIDs: c.PickupLocationIDs,
		ReturnLocationIDs: c.ReturnLocationIDs,
		ImageURL:          c.ImageURL,
		BookingCount:      c.BookingCount(),
	}
}

// BookedWindow exposes an occupied time window on the car detail view
// without leaking who booked it.
type BookedWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type CarDetailResponse struct {
	CarResponse
	BookedWindows []BookedWindow `json:"booked_windows"`
}

func NewCarDetailResponse(c *catalog.Car) CarDetailResponse {
	bookings := c.Bookings()
	windows := make([]BookedWindow, len(bookings))
	for i, b := range bookings {
		windows[i] = BookedWindow{Start: b.Start, End: b.End}
	}
	return CarDetailResponse{
		CarResponse:   NewCarResponse(c),
		BookedWindows: windows,
	}
}

// DisplayPrice carries the breakdown converted into the requested display
// currency. Conversion applies to already-computed figures only; the
// discount tier is always chosen on native-currency math.
type DisplayPrice struct {
	Currency       string  `json:"currency"`
	Rate           float64 `json:"rate"`
	PricePerHour   float64 `json:"price_per_hour"`
	Base           float64 `json:"base"`
	Discount       float64 `json:"discount"`
	Total          float64 `json:"total"`
	FormattedTotal string  `json:"formatted_total"`
}

type QuoteResponse struct {
	CarID          string        `json:"car_id"`
	Currency       string        `json:"currency"`
	PricePerHour   float64       `json:"price_per_hour"`
	Hours          int           `json:"hours"`
	Days           int           `json:"days"`
	RemainingHours int           `json:"remaining_hours"`
	Base           float64       `json:"base"`
	DiscountRate   float64       `json:"discount_rate"`
	Discount       float64       `json:"discount"`
	Total          float64       `json:"total"`
	FormattedTotal string        `json:"formatted_total"`
	Display        *DisplayPrice `json:"display,omitempty"`
}

func NewQuoteResponse(car *catalog.Car, bd pricing.Breakdown, baseCurrency string) QuoteResponse {
	return QuoteResponse{
		CarID:          car.ID,
		Currency:       baseCurrency,
		PricePerHour:   car.PricePerHour,
		Hours:          bd.Hours,
		Days:           bd.Days,
		RemainingHours: bd.RemainingHours,
		Base:           bd.Base,
		DiscountRate:   bd.DiscountRate,
		Discount:       bd.Discount,
		Total:          bd.Total,
		FormattedTotal: money.Format(bd.Total, baseCurrency),
	}
}
