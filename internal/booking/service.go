package booking

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"rentacar-backend/internal/catalog"
	"rentacar-backend/internal/pkg/apperror"
)

var (
	ErrCarNotFound      = apperror.New(http.StatusNotFound, "car not found")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrLocationRequired = apperror.New(http.StatusBadRequest, "pickup and return locations are required")
	ErrTimeConflict     = apperror.New(http.StatusConflict, "car is already booked for this window")
)

// Request carries the fields of a booking attempt.
type Request struct {
	CarID            string
	PickupLocationID string
	ReturnLocationID string
	Start            time.Time
	End              time.Time
}

type Service interface {
	// Book commits a reservation after an availability and field check.
	// Rejection is an expected outcome, reported through the sentinel errors
	// above rather than anything fatal.
	Book(req Request) (*catalog.Booking, error)
}

type service struct {
	repo   catalog.Repository
	logger *slog.Logger
}

func NewService(repo catalog.Repository, logger *slog.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Book(req Request) (*catalog.Booking, error) {
	// 1. Validate the window. Fail closed on missing or inverted times.
	if req.Start.IsZero() || req.End.IsZero() || !req.Start.Before(req.End) {
		return nil, ErrInvalidTimeRange
	}

	// 2. Both locations must be selected.
	if req.PickupLocationID == "" || req.ReturnLocationID == "" {
		return nil, ErrLocationRequired
	}

	b := catalog.Booking{
		ID:               uuid.NewString(),
		CarID:            req.CarID,
		PickupLocationID: req.PickupLocationID,
		ReturnLocationID: req.ReturnLocationID,
		Start:            req.Start,
		End:              req.End,
		CreatedAt:        time.Now(),
	}

	// 3. Commit through the catalog's single mutation path. The overlap
	// check runs there, under the repository lock.
	if err := s.repo.Commit(req.CarID, b); err != nil {
		switch {
		case errors.Is(err, catalog.ErrCarNotFound):
			return nil, ErrCarNotFound
		case errors.Is(err, catalog.ErrUnavailable):
			return nil, ErrTimeConflict
		default:
			return nil, apperror.Wrap(err, http.StatusInternalServerError, "could not commit booking")
		}
	}

	s.logger.Info("booking committed",
		"booking_id", b.ID,
		"car_id", b.CarID,
		"start", b.Start,
		"end", b.End,
	)
	return &b, nil
}
