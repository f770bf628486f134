package http

import (
	nethttp "net/http"

	"github.com/gin-gonic/gin"

	"rentacar-backend/internal/booking"
	"rentacar-backend/internal/pkg/response"
	"rentacar-backend/internal/pkg/timeutil"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(nethttp.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	// Unparseable dates reject the same way an inverted window does.
	start, okS := timeutil.ParseLocal(body.Start)
	end, okE := timeutil.ParseLocal(body.End)
	if !okS || !okE {
		response.Error(c, booking.ErrInvalidTimeRange)
		return
	}

	req := booking.Request{
		CarID:            c.Param("id"),
		PickupLocationID: body.PickupLocationID,
		ReturnLocationID: body.ReturnLocationID,
		Start:            start,
		End:              end,
	}

	b, err := h.service.Book(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(nethttp.StatusCreated, NewBookingResponse(b))
}
