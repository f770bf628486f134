package http

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rentacar-backend/internal/catalog"
	"rentacar-backend/internal/currency"
	"rentacar-backend/internal/pkg/apperror"
	"rentacar-backend/internal/pkg/money"
	"rentacar-backend/internal/pkg/response"
	"rentacar-backend/internal/pkg/timeutil"
	"rentacar-backend/internal/pricing"
)

var errCarNotFound = apperror.New(nethttp.StatusNotFound, "car not found")

// RateSource is the slice of the currency client the quote endpoint needs.
type RateSource interface {
	FetchRate(ctx context.Context, base, target string) (float64, error)
}

type CarHandler struct {
	repo         catalog.Repository
	rates        RateSource
	baseCurrency string
	logger       *slog.Logger
}

func NewCarHandler(repo catalog.Repository, rates RateSource, baseCurrency string, logger *slog.Logger) *CarHandler {
	return &CarHandler{
		repo:         repo,
		rates:        rates,
		baseCurrency: baseCurrency,
		logger:       logger,
	}
}

// List searches the catalog. All criteria are optional and AND-combined;
// the date filter only applies when both start and end parse.
func (h *CarHandler) List(c *gin.Context) {
	criteria := catalog.SearchCriteria{
		Make:             c.Query("make"),
		PickupLocationID: c.Query("pickup_location_id"),
		ReturnLocationID: c.Query("return_location_id"),
	}
	if t, ok := timeutil.ParseLocal(c.Query("start")); ok {
		criteria.Start = t
	}
	if t, ok := timeutil.ParseLocal(c.Query("end")); ok {
		criteria.End = t
	}

	cars := h.repo.Search(criteria)
	items := make([]CarResponse, len(cars))
	for i, car := range cars {
		items[i] = NewCarResponse(car)
	}
	c.JSON(nethttp.StatusOK, response.NewListResponse(items))
}

func (h *CarHandler) Get(c *gin.Context) {
	car, ok := h.repo.FindByID(c.Param("id"))
	if !ok {
		response.Error(c, errCarNotFound)
		return
	}
	c.JSON(nethttp.StatusOK, NewCarDetailResponse(car))
}

// Quote prices a rental window for a car. Malformed or missing dates yield
// an all-zero breakdown, mirroring how the pricing engine degrades. An
// optional display currency converts the computed figures; a failed rate
// lookup degrades to the native amounts instead of failing the request.
func (h *CarHandler) Quote(c *gin.Context) {
	car, ok := h.repo.FindByID(c.Param("id"))
	if !ok {
		response.Error(c, errCarNotFound)
		return
	}

	bd := pricing.QuoteStrings(c.Query("start"), c.Query("end"), car.PricePerHour)
	resp := NewQuoteResponse(car, bd, h.baseCurrency)

	if target := strings.ToUpper(strings.TrimSpace(c.Query("currency"))); target != "" {
		rate, err := h.rates.FetchRate(c.Request.Context(), h.baseCurrency, target)
		if err != nil {
			h.logger.Warn("rate lookup failed, using identity rate", "target", target, "error", err)
			rate = 1
		}
		resp.Display = &DisplayPrice{
			Currency:       target,
			Rate:           rate,
			PricePerHour:   currency.Convert(car.PricePerHour, rate),
			Base:           currency.Convert(bd.Base, rate),
			Discount:       currency.Convert(bd.Discount, rate),
			Total:          currency.Convert(bd.Total, rate),
			FormattedTotal: money.Format(currency.Convert(bd.Total, rate), target),
		}
	}

	c.JSON(nethttp.StatusOK, resp)
}

func (h *CarHandler) Locations(c *gin.Context) {
	locs := h.repo.Locations()
	items := make([]LocationResponse, len(locs))
	for i, l := range locs {
		items[i] = NewLocationResponse(l)
	}
	c.JSON(nethttp.StatusOK, response.NewListResponse(items))
}
