package booking

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentacar-backend/internal/catalog"
	"rentacar-backend/internal/pkg/apperror"
)

func newTestService(t *testing.T) (Service, catalog.Repository) {
	t.Helper()
	locations := []catalog.Location{
		{ID: "ber", City: "Berlin", Name: "Mitte"},
		{ID: "ham", City: "Hamburg", Name: "Central"},
	}
	cars := []*catalog.Car{
		{
			ID: "c1", Make: "Toyota", Model: "Corolla", PricePerHour: 10,
			PickupLocationIDs: []string{"ber"},
			ReturnLocationIDs: []string{"ber", "ham"},
		},
	}
	repo := catalog.NewInMemoryRepository(locations, cars)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, logger), repo
}

func at(hour int) time.Time {
	return time.Date(2026, 9, 10, hour, 0, 0, 0, time.UTC)
}

func TestBook(t *testing.T) {
	svc, repo := newTestService(t)

	b, err := svc.Book(Request{
		CarID:            "c1",
		PickupLocationID: "ber",
		ReturnLocationID: "ham",
		Start:            at(10),
		End:              at(12),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.False(t, b.CreatedAt.IsZero())
	assert.Equal(t, "c1", b.CarID)
	assert.Equal(t, "ber", b.PickupLocationID)
	assert.Equal(t, "ham", b.ReturnLocationID)

	car, ok := repo.FindByID("c1")
	require.True(t, ok)
	require.Equal(t, 1, car.BookingCount())
	assert.Equal(t, *b, car.Bookings()[0], "the committed booking must match the returned one")
}

func TestBookRejections(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name:    "unknown car",
			req:     Request{CarID: "nope", PickupLocationID: "ber", ReturnLocationID: "ber", Start: at(10), End: at(12)},
			wantErr: ErrCarNotFound,
		},
		{
			name:    "end before start",
			req:     Request{CarID: "c1", PickupLocationID: "ber", ReturnLocationID: "ber", Start: at(12), End: at(10)},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "zero-length window",
			req:     Request{CarID: "c1", PickupLocationID: "ber", ReturnLocationID: "ber", Start: at(10), End: at(10)},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "missing start",
			req:     Request{CarID: "c1", PickupLocationID: "ber", ReturnLocationID: "ber", End: at(12)},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "missing pickup location",
			req:     Request{CarID: "c1", ReturnLocationID: "ber", Start: at(10), End: at(12)},
			wantErr: ErrLocationRequired,
		},
		{
			name:    "missing return location",
			req:     Request{CarID: "c1", PickupLocationID: "ber", Start: at(10), End: at(12)},
			wantErr: ErrLocationRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			_, err := svc.Book(tt.req)
			assert.ErrorIs(t, err, tt.wantErr)

			if car, ok := repo.FindByID("c1"); ok {
				assert.Equal(t, 0, car.BookingCount(), "rejected booking must leave the car untouched")
			}
		})
	}
}

// failingRepo stands in for a backing store whose commit fails for a reason
// outside the expected rejection set.
type failingRepo struct {
	catalog.Repository
	err error
}

func (r failingRepo) Commit(string, catalog.Booking) error { return r.err }

func TestBookUnexpectedRepositoryError(t *testing.T) {
	_, repo := newTestService(t)
	cause := errors.New("backing store gone")
	svc := NewService(failingRepo{Repository: repo, err: cause},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := svc.Book(Request{
		CarID:            "c1",
		PickupLocationID: "ber",
		ReturnLocationID: "ber",
		Start:            at(10),
		End:              at(12),
	})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.ErrorIs(t, err, cause, "the cause must stay reachable through Unwrap")
}

func TestBookConflict(t *testing.T) {
	svc, _ := newTestService(t)

	first := Request{CarID: "c1", PickupLocationID: "ber", ReturnLocationID: "ber", Start: at(10), End: at(12)}
	_, err := svc.Book(first)
	require.NoError(t, err)

	t.Run("overlapping window", func(t *testing.T) {
		_, err := svc.Book(Request{CarID: "c1", PickupLocationID: "ber", ReturnLocationID: "ber", Start: at(11), End: at(13)})
		assert.ErrorIs(t, err, ErrTimeConflict)
	})

	t.Run("identical window", func(t *testing.T) {
		_, err := svc.Book(first)
		assert.ErrorIs(t, err, ErrTimeConflict)
	})

	t.Run("back-to-back is not a conflict", func(t *testing.T) {
		_, err := svc.Book(Request{CarID: "c1", PickupLocationID: "ber", ReturnLocationID: "ber", Start: at(12), End: at(14)})
		assert.NoError(t, err)
	})
}
