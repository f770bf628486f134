package catalog

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrCarNotFound = errors.New("car not found")
	ErrUnavailable = errors.New("car is not available for the requested window")
)

type Fuel string

const (
	FuelPetrol   Fuel = "petrol"
	FuelDiesel   Fuel = "diesel"
	FuelElectric Fuel = "electric"
	FuelHybrid   Fuel = "hybrid"
)

type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
)

// Location is immutable reference data: created at catalog load, never
// mutated or deleted within a session.
type Location struct {
	ID   string
	City string
	Name string
}

// Booking is one committed reservation of a car for a half-open time window
// [Start, End). Pickup and return locations need not match.
type Booking struct {
	ID               string
	CarID            string
	PickupLocationID string
	ReturnLocationID string
	Start            time.Time
	End              time.Time
	CreatedAt        time.Time
}

// Car is owned by the repository for its whole lifetime. The booking list is
// unexported on purpose: the only way to grow it is the overlap-checked
// append behind Repository.Commit, which is what keeps the no-overlap
// invariant intact. The list has its own lock because *Car pointers outlive
// the repository lock: handlers read bookings after FindByID returns.
type Car struct {
	ID                string
	Make              string
	Model             string
	Year              int
	Fuel              Fuel
	Transmission      Transmission
	Seats             int
	PricePerHour      float64
	PickupLocationIDs []string
	ReturnLocationIDs []string
	ImageURL          string

	mu       sync.RWMutex
	bookings []Booking
}

// Bookings returns a copy of the car's booking list for read-only use.
func (c *Car) Bookings() []Booking {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Booking(nil), c.bookings...)
}

// BookingCount returns the number of committed bookings.
func (c *Car) BookingCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.bookings)
}

// OffersPickup reports whether the car can be picked up at the location.
func (c *Car) OffersPickup(locationID string) bool {
	return containsID(c.PickupLocationIDs, locationID)
}

// OffersReturn reports whether the car can be returned at the location.
func (c *Car) OffersReturn(locationID string) bool {
	return containsID(c.ReturnLocationIDs, locationID)
}

// addBooking is the single append path for the booking list. It re-checks
// availability under the car lock so the list can never hold two overlapping
// windows, no matter what the caller verified beforehand.
func (c *Car) addBooking(b Booking) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !validWindow(b.Start, b.End) || !c.freeOfOverlap(b.Start, b.End) {
		return ErrUnavailable
	}
	c.bookings = append(c.bookings, b)
	return nil
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
