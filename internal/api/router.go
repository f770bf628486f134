package api

import (
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rentacar-backend/internal/booking"
	bookingHttp "rentacar-backend/internal/booking/http"
	"rentacar-backend/internal/catalog"
	catalogHttp "rentacar-backend/internal/catalog/http"
	"rentacar-backend/internal/currency"
	currencyHttp "rentacar-backend/internal/currency/http"
	statsHttp "rentacar-backend/internal/stats/http"
)

// Config holds the dependencies the router needs to assemble the handlers.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	Repo           catalog.Repository
	BookingService booking.Service
	Rates          *currency.Client
	BaseCurrency   string
	Logger         *slog.Logger
}

// NewRouter initializes the HTTP router engine. It is responsible for
// assembling middleware (CORS, Logger) and registering routes for the
// modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS. Production restricts to the configured origins; dev
	// allows the local frontend.
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:5173"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(nethttp.StatusOK, gin.H{"status": "ok"})
	})

	// Initialize HTTP handlers for each module (injecting service dependencies).
	carHandler := catalogHttp.NewCarHandler(cfg.Repo, cfg.Rates, cfg.BaseCurrency, cfg.Logger)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	currencyHandler := currencyHttp.NewHandler(cfg.Rates, cfg.Logger)
	statsHandler := statsHttp.NewHandler(cfg.Repo)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		catalogHttp.RegisterRoutes(v1, carHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler)
		currencyHttp.RegisterRoutes(v1, currencyHandler)
		statsHttp.RegisterRoutes(v1, statsHandler)
	}

	return r
}
