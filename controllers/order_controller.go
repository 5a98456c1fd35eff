package controllers

import (
	"strconv"

	"github.com/carlossbezerra/SuperDelivery/pkg/resp"
	"github.com/carlossbezerra/SuperDelivery/services"
	"github.com/carlossbezerra/SuperDelivery/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /orders — checkout.
func (h *OrderController) Create(c *gin.Context) {
	var in services.CheckoutIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.Checkout(utils.CurrentUserID(c), &in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (h *OrderController) ListForMe(c *gin.Context) {
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	order, err := h.Svc.Get(utils.CurrentUserID(c), uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/:id/tracking — the simulated progress view.
func (h *OrderController) Track(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	order, tracking, err := h.Svc.Track(utils.CurrentUserID(c), uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order, "tracking": tracking})
}
