package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedSeed(t *testing.T) {
	locations, cars, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, locations)
	require.NotEmpty(t, cars)

	for _, c := range cars {
		assert.Greater(t, c.PricePerHour, 0.0, "car %s", c.ID)
		assert.NotEmpty(t, c.PickupLocationIDs, "car %s", c.ID)
		assert.NotEmpty(t, c.ReturnLocationIDs, "car %s", c.ID)
	}

	// Seed bookings go through the same overlap gate as live commits.
	repo := NewInMemoryRepository(locations, cars)
	golf, ok := repo.FindByID("c3")
	require.True(t, ok)
	assert.Equal(t, 2, golf.BookingCount(), "back-to-back seed bookings must both load")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `{
		"locations": [{"id": "x", "city": "Testville", "name": "Depot"}],
		"cars": [{
			"id": "t1", "make": "Test", "model": "One", "year": 2024,
			"fuel": "petrol", "transmission": "manual", "seats": 4,
			"pricePerHour": 5,
			"pickupLocationIds": ["x"], "returnLocationIds": ["x"],
			"bookings": [{"pickupLocationId": "x", "returnLocationId": "x",
				"start": "2026-09-01T10:00", "end": "2026-09-01T12:00"}]
		}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	locations, cars, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, locations, 1)
	require.Len(t, cars, 1)
	assert.Equal(t, 1, cars[0].BookingCount())
}

func TestLoadRejectsBadData(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, _, err := Load(filepath.Join(dir, "absent.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
		_, _, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("non-positive price", func(t *testing.T) {
		path := filepath.Join(dir, "price.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"cars": [{"id": "t1", "pricePerHour": 0}]}`), 0o644))
		_, _, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("overlapping seed bookings", func(t *testing.T) {
		path := filepath.Join(dir, "overlap.json")
		data := `{"cars": [{
			"id": "t1", "make": "Test", "model": "One", "pricePerHour": 5,
			"bookings": [
				{"start": "2026-09-01T10:00", "end": "2026-09-01T12:00"},
				{"start": "2026-09-01T11:00", "end": "2026-09-01T13:00"}
			]
		}]}`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
		_, _, err := Load(path)
		assert.Error(t, err)
	})
}
