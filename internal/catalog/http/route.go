package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *CarHandler) {
	cars := g.Group("/cars")
	{
		cars.GET("", h.List)
		cars.GET("/:id", h.Get)
		cars.GET("/:id/quote", h.Quote)
	}

	g.GET("/locations", h.Locations)
}
