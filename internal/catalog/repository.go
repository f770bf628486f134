package catalog

import (
	"strings"
	"sync"
	"time"
)

// SearchCriteria is a transient value object built per search call.
// Make matches case-insensitively as a substring. The date filter applies
// only when both Start and End are set; a lone bound is ignored.
type SearchCriteria struct {
	Make             string
	PickupLocationID string
	ReturnLocationID string
	Start            time.Time
	End              time.Time
}

type Repository interface {
	GetAll() []*Car
	FindByID(id string) (*Car, bool)
	Search(criteria SearchCriteria) []*Car
	// Commit appends a validated booking to the car's booking list. It is
	// the sole mutation entry point of the catalog.
	Commit(carID string, b Booking) error

	Locations() []Location
	FindLocation(id string) (Location, bool)
}

// InMemoryRepository holds the static car and location collections for the
// whole session. The demo keeps bookings only in these volatile structures.
type InMemoryRepository struct {
	mu        sync.RWMutex
	cars      []*Car
	byID      map[string]*Car
	locations []Location
}

func NewInMemoryRepository(locations []Location, cars []*Car) *InMemoryRepository {
	byID := make(map[string]*Car, len(cars))
	for _, c := range cars {
		byID[c.ID] = c
	}
	return &InMemoryRepository{
		cars:      cars,
		byID:      byID,
		locations: locations,
	}
}

// GetAll returns the full catalog in insertion order.
func (r *InMemoryRepository) GetAll() []*Car {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Car(nil), r.cars...)
}

func (r *InMemoryRepository) FindByID(id string) (*Car, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	car, ok := r.byID[id]
	return car, ok
}

// Search applies the supplied criteria, AND-combined, preserving catalog
// order. It never mutates the catalog or the criteria.
func (r *InMemoryRepository) Search(criteria SearchCriteria) []*Car {
	r.mu.RLock()
	defer r.mu.RUnlock()

	makeQuery := strings.ToLower(strings.TrimSpace(criteria.Make))
	withDates := !criteria.Start.IsZero() && !criteria.End.IsZero()

	out := make([]*Car, 0, len(r.cars))
	for _, car := range r.cars {
		if makeQuery != "" && !strings.Contains(strings.ToLower(car.Make), makeQuery) {
			continue
		}
		if criteria.PickupLocationID != "" && !car.OffersPickup(criteria.PickupLocationID) {
			continue
		}
		if criteria.ReturnLocationID != "" && !car.OffersReturn(criteria.ReturnLocationID) {
			continue
		}
		if withDates && !IsAvailable(car, criteria.Start, criteria.End) {
			continue
		}
		out = append(out, car)
	}
	return out
}

func (r *InMemoryRepository) Commit(carID string, b Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	car, ok := r.byID[carID]
	if !ok {
		return ErrCarNotFound
	}
	return car.addBooking(b)
}

func (r *InMemoryRepository) Locations() []Location {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Location(nil), r.locations...)
}

func (r *InMemoryRepository) FindLocation(id string) (Location, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, loc := range r.locations {
		if loc.ID == id {
			return loc, true
		}
	}
	return Location{}, false
}
