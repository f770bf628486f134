package catalog

import "time"

// overlaps applies the standard half-open interval test: [aStart, aEnd) and
// [bStart, bEnd) overlap iff aStart < bEnd && bStart < aEnd. A window that
// ends exactly when another starts does not overlap, so back-to-back
// bookings are allowed.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// validWindow reports whether [start, end) is a usable half-open window:
// both bounds set and start strictly before end.
func validWindow(start, end time.Time) bool {
	return !start.IsZero() && !end.IsZero() && start.Before(end)
}

// freeOfOverlap scans the booking list for a conflict with [start, end).
// The caller must hold c.mu.
func (c *Car) freeOfOverlap(start, end time.Time) bool {
	for _, b := range c.bookings {
		if overlaps(start, end, b.Start, b.End) {
			return false
		}
	}
	return true
}

// IsAvailable reports whether the candidate window [start, end) is free of
// overlap with the car's existing bookings. It fails closed: a missing or
// inverted window is never available.
func IsAvailable(car *Car, start, end time.Time) bool {
	if car == nil || !validWindow(start, end) {
		return false
	}
	car.mu.RLock()
	defer car.mu.RUnlock()
	return car.freeOfOverlap(start, end)
}

// FindAvailable filters cars to those offering the given pickup and return
// locations (when specified) and available for the window. Input order is
// preserved.
func FindAvailable(cars []*Car, start, end time.Time, pickupLocationID, returnLocationID string) []*Car {
	out := make([]*Car, 0, len(cars))
	for _, car := range cars {
		if pickupLocationID != "" && !car.OffersPickup(pickupLocationID) {
			continue
		}
		if returnLocationID != "" && !car.OffersReturn(returnLocationID) {
			continue
		}
		if !IsAvailable(car, start, end) {
			continue
		}
		out = append(out, car)
	}
	return out
}
