package controllers

import (
	"strconv"

	"github.com/carlossbezerra/SuperDelivery/pkg/resp"
	"github.com/carlossbezerra/SuperDelivery/services"
	"github.com/gin-gonic/gin"
)

type RestaurantController struct{ Svc *services.CatalogService }

func NewRestaurantController(s *services.CatalogService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /restaurants?category=
func (h *RestaurantController) List(c *gin.Context) {
	restaurants, err := h.Svc.List(c.Query("category"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, restaurants)
}

// GET /restaurants/:id — detail with menu.
func (h *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	rest, err := h.Svc.Detail(uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, rest)
}
