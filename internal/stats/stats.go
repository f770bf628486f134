// Package stats derives simple usage counts from the catalog for the
// statistics page. Chart rendering stays with the consumer.
package stats

import (
	"sort"

	"rentacar-backend/internal/catalog"
)

type CountMap map[string]int

// PerMake counts committed bookings grouped by car make.
func PerMake(cars []*catalog.Car) CountMap {
	acc := CountMap{}
	for _, c := range cars {
		acc[c.Make] += c.BookingCount()
	}
	return acc
}

// PerModel counts committed bookings grouped by car model.
func PerModel(cars []*catalog.Car) CountMap {
	acc := CountMap{}
	for _, c := range cars {
		acc[c.Model] += c.BookingCount()
	}
	return acc
}

// PerTransmission counts committed bookings grouped by transmission kind.
func PerTransmission(cars []*catalog.Car) CountMap {
	acc := CountMap{}
	for _, c := range cars {
		acc[string(c.Transmission)] += c.BookingCount()
	}
	return acc
}

// PerMonth counts bookings by the UTC year-month of their start instant,
// keyed "YYYY-MM".
func PerMonth(cars []*catalog.Car) CountMap {
	acc := CountMap{}
	for _, c := range cars {
		for _, b := range c.Bookings() {
			acc[b.Start.UTC().Format("2006-01")]++
		}
	}
	return acc
}

// Entry is one ranked row of a count map.
type Entry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// TopN returns the n largest entries by count, descending. Ties break by key
// ascending so the order is deterministic.
func TopN(counts CountMap, n int) []Entry {
	entries := make([]Entry, 0, len(counts))
	for k, v := range counts {
		entries = append(entries, Entry{Key: k, Count: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	if n >= 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
