package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gin-gonic/gin"

	"rentacar-backend/internal/currency"
)

type CurrenciesResponse struct {
	Currencies map[string]string `json:"currencies"`
}

type Handler struct {
	client *currency.Client
	logger *slog.Logger
}

func NewHandler(client *currency.Client, logger *slog.Logger) *Handler {
	return &Handler{client: client, logger: logger}
}

// List proxies the supported-currency list. A rate source failure is
// non-fatal: the response degrades to the single-currency default.
func (h *Handler) List(c *gin.Context) {
	currencies, err := h.client.ListCurrencies(c.Request.Context())
	if err != nil {
		h.logger.Warn("currency list unavailable, using default", "error", err)
		currencies = currency.DefaultCurrencies
	}
	c.JSON(nethttp.StatusOK, CurrenciesResponse{Currencies: currencies})
}
