package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentacar-backend/internal/catalog"
)

func statsFleet(t *testing.T) []*catalog.Car {
	t.Helper()
	cars := []*catalog.Car{
		{ID: "c1", Make: "Toyota", Model: "Corolla", Transmission: catalog.TransmissionManual, PricePerHour: 10},
		{ID: "c2", Make: "Toyota", Model: "RAV4", Transmission: catalog.TransmissionAutomatic, PricePerHour: 14},
		{ID: "c3", Make: "Volkswagen", Model: "Golf", Transmission: catalog.TransmissionManual, PricePerHour: 8},
		{ID: "c4", Make: "Tesla", Model: "Model 3", Transmission: catalog.TransmissionAutomatic, PricePerHour: 20},
	}
	repo := catalog.NewInMemoryRepository(nil, cars)

	book := func(carID string, start time.Time) {
		t.Helper()
		require.NoError(t, repo.Commit(carID, catalog.Booking{
			CarID: carID,
			Start: start,
			End:   start.Add(4 * time.Hour),
		}))
	}

	sep := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	oct := time.Date(2026, 10, 2, 10, 0, 0, 0, time.UTC)

	book("c1", sep)
	book("c1", oct)
	book("c2", sep.Add(24*time.Hour))
	book("c3", oct.Add(24*time.Hour))
	// c4 stays unbooked.

	return repo.GetAll()
}

func TestPerMake(t *testing.T) {
	got := PerMake(statsFleet(t))
	assert.Equal(t, CountMap{"Toyota": 3, "Volkswagen": 1, "Tesla": 0}, got)
}

func TestPerModel(t *testing.T) {
	got := PerModel(statsFleet(t))
	assert.Equal(t, CountMap{"Corolla": 2, "RAV4": 1, "Golf": 1, "Model 3": 0}, got)
}

func TestPerTransmission(t *testing.T) {
	got := PerTransmission(statsFleet(t))
	assert.Equal(t, CountMap{"manual": 3, "automatic": 1}, got)
}

func TestPerMonth(t *testing.T) {
	got := PerMonth(statsFleet(t))
	assert.Equal(t, CountMap{"2026-09": 2, "2026-10": 2}, got)
}

func TestPerMonthUsesUTC(t *testing.T) {
	// Sep 1 01:30 in UTC+2 is Aug 31 23:30 UTC, still August.
	loc := time.FixedZone("UTC+2", 2*60*60)
	start := time.Date(2026, 9, 1, 1, 30, 0, 0, loc)

	car := &catalog.Car{ID: "c1", Make: "Toyota", Model: "Corolla", PricePerHour: 10}
	repo := catalog.NewInMemoryRepository(nil, []*catalog.Car{car})
	require.NoError(t, repo.Commit("c1", catalog.Booking{CarID: "c1", Start: start, End: start.Add(2 * time.Hour)}))

	got := PerMonth(repo.GetAll())
	assert.Equal(t, CountMap{"2026-08": 1}, got)
}

func TestTopN(t *testing.T) {
	counts := CountMap{"Golf": 5, "Corolla": 9, "RAV4": 5, "Model 3": 1}

	t.Run("orders by count then key", func(t *testing.T) {
		got := TopN(counts, 10)
		want := []Entry{
			{Key: "Corolla", Count: 9},
			{Key: "Golf", Count: 5},
			{Key: "RAV4", Count: 5},
			{Key: "Model 3", Count: 1},
		}
		assert.Equal(t, want, got)
	})

	t.Run("truncates to n", func(t *testing.T) {
		got := TopN(counts, 2)
		assert.Equal(t, []Entry{{Key: "Corolla", Count: 9}, {Key: "Golf", Count: 5}}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, TopN(CountMap{}, 5))
	})
}
