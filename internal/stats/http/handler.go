package http

import (
	nethttp "net/http"

	"github.com/gin-gonic/gin"

	"rentacar-backend/internal/catalog"
	"rentacar-backend/internal/stats"
)

type StatsResponse struct {
	PerMake         stats.CountMap `json:"per_make"`
	PerModel        stats.CountMap `json:"per_model"`
	PerTransmission stats.CountMap `json:"per_transmission"`
	PerMonth        stats.CountMap `json:"per_month"`
	TopModels       []stats.Entry  `json:"top_models"`
}

type Handler struct {
	repo catalog.Repository
}

func NewHandler(repo catalog.Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) Get(c *gin.Context) {
	cars := h.repo.GetAll()
	perModel := stats.PerModel(cars)
	c.JSON(nethttp.StatusOK, StatsResponse{
		PerMake:         stats.PerMake(cars),
		PerModel:        perModel,
		PerTransmission: stats.PerTransmission(cars),
		PerMonth:        stats.PerMonth(cars),
		TopModels:       stats.TopN(perModel, 5),
	})
}
