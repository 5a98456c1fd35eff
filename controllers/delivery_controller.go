package controllers

import (
	"strconv"

	"github.com/carlossbezerra/SuperDelivery/pkg/resp"
	"github.com/carlossbezerra/SuperDelivery/services"
	"github.com/carlossbezerra/SuperDelivery/utils"
	"github.com/gin-gonic/gin"
)

type DeliveryController struct{ Svc *services.DeliveryService }

func NewDeliveryController(s *services.DeliveryService) *DeliveryController {
	return &DeliveryController{Svc: s}
}

// GET /courier/deliveries — the open pool.
func (h *DeliveryController) Pool(c *gin.Context) {
	deliveries, err := h.Svc.Pool()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, deliveries)
}

// GET /courier/deliveries/active — nil data when the courier has none.
func (h *DeliveryController) Active(c *gin.Context) {
	delivery, err := h.Svc.Active(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, delivery)
}

func (h *DeliveryController) Accept(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	delivery, err := h.Svc.Accept(utils.CurrentUserID(c), uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, delivery)
}

func (h *DeliveryController) Arrived(c *gin.Context) {
	h.step(c, h.Svc.Arrived)
}

func (h *DeliveryController) Depart(c *gin.Context) {
	h.step(c, h.Svc.Depart)
}

func (h *DeliveryController) Complete(c *gin.Context) {
	h.step(c, h.Svc.Complete)
}

func (h *DeliveryController) step(c *gin.Context, fn func(courierID, deliveryID uint) error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := fn(utils.CurrentUserID(c), uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": uint(id)})
}

func (h *DeliveryController) Stats(c *gin.Context) {
	stats, err := h.Svc.Stats(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, stats)
}

type availabilityRequest struct {
	Online *bool `json:"online" binding:"required"`
}

// PUT /courier/availability
func (h *DeliveryController) SetAvailability(c *gin.Context) {
	var body availabilityRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetAvailability(utils.CurrentUserID(c), *body.Online); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"online": *body.Online})
}
