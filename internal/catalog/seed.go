package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"rentacar-backend/internal/pkg/timeutil"
)

//go:embed seed.json
var seedData []byte

// catalogFile mirrors the JSON shape the catalog is loaded from. The loader
// stands in for the external data-loading collaborator: the rest of the
// service only ever sees already-built in-memory structures.
type catalogFile struct {
	Locations []locationRecord `json:"locations"`
	Cars      []carRecord      `json:"cars"`
}

type locationRecord struct {
	ID   string `json:"id"`
	City string `json:"city"`
	Name string `json:"name"`
}

type carRecord struct {
	ID                string          `json:"id"`
	Make              string          `json:"make"`
	Model             string          `json:"model"`
	Year              int             `json:"year"`
	Fuel              string          `json:"fuel"`
	Transmission      string          `json:"transmission"`
	Seats             int             `json:"seats"`
	PricePerHour      float64         `json:"pricePerHour"`
	PickupLocationIDs []string        `json:"pickupLocationIds"`
	ReturnLocationIDs []string        `json:"returnLocationIds"`
	ImageURL          string          `json:"imageUrl,omitempty"`
	Bookings          []bookingRecord `json:"bookings,omitempty"`
}

type bookingRecord struct {
	PickupLocationID string `json:"pickupLocationId"`
	ReturnLocationID string `json:"returnLocationId"`
	Start            string `json:"start"`
	End              string `json:"end"`
}

// Load reads the catalog from the given JSON file, or from the embedded
// seed when path is empty.
func Load(path string) ([]Location, []*Car, error) {
	data := seedData
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read catalog file: %w", err)
		}
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parse catalog: %w", err)
	}

	locations := make([]Location, 0, len(file.Locations))
	for _, rec := range file.Locations {
		locations = append(locations, Location{ID: rec.ID, City: rec.City, Name: rec.Name})
	}

	cars := make([]*Car, 0, len(file.Cars))
	for _, rec := range file.Cars {
		if rec.PricePerHour <= 0 {
			return nil, nil, fmt.Errorf("car %s: pricePerHour must be positive", rec.ID)
		}
		car := &Car{
			ID:                rec.ID,
			Make:              rec.Make,
			Model:             rec.Model,
			Year:              rec.Year,
			Fuel:              Fuel(rec.Fuel),
			Transmission:      Transmission(rec.Transmission),
			Seats:             rec.Seats,
			PricePerHour:      rec.PricePerHour,
			PickupLocationIDs: rec.PickupLocationIDs,
			ReturnLocationIDs: rec.ReturnLocationIDs,
			ImageURL:          rec.ImageURL,
		}
		for _, br := range rec.Bookings {
			start, ok := timeutil.ParseLocal(br.Start)
			if !ok {
				return nil, nil, fmt.Errorf("car %s: invalid booking start %q", rec.ID, br.Start)
			}
			end, ok := timeutil.ParseLocal(br.End)
			if !ok {
				return nil, nil, fmt.Errorf("car %s: invalid booking end %q", rec.ID, br.End)
			}
			b := Booking{
				ID:               uuid.NewString(),
				CarID:            car.ID,
				PickupLocationID: br.PickupLocationID,
				ReturnLocationID: br.ReturnLocationID,
				Start:            start,
				End:              end,
				CreatedAt:        time.Now(),
			}
			if err := car.addBooking(b); err != nil {
				return nil, nil, fmt.Errorf("car %s: seed bookings overlap", rec.ID)
			}
		}
		cars = append(cars, car)
	}

	return locations, cars, nil
}
