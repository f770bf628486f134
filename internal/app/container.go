package app

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"rentacar-backend/internal/api"
	"rentacar-backend/internal/booking"
	"rentacar-backend/internal/catalog"
	"rentacar-backend/internal/config"
	"rentacar-backend/internal/currency"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
	Repo   catalog.Repository
}

// NewContainer loads the catalog and wires all modules together.
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	// Catalog module: static reference data loaded once at startup.
	locations, cars, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	repo := catalog.NewInMemoryRepository(locations, cars)
	logger.Info("catalog loaded", "cars", len(cars), "locations", len(locations))

	// Currency module: read-through client for the external rate source.
	rates := currency.NewClient(cfg.RateAPIURL, cfg.RateAPITimeout)

	// Booking module.
	bookingService := booking.NewService(repo, logger)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		Repo:           repo,
		BookingService: bookingService,
		Rates:          rates,
		BaseCurrency:   cfg.BaseCurrency,
		Logger:         logger,
	})

	return &Container{
		Router: router,
		Repo:   repo,
	}, nil
}
