package controllers

import (
	"strconv"

	"github.com/carlossbezerra/SuperDelivery/pkg/resp"
	"github.com/carlossbezerra/SuperDelivery/services"
	"github.com/carlossbezerra/SuperDelivery/utils"
	"github.com/gin-gonic/gin"
)

// MerchantController drives the restaurant side of the order lifecycle.
type MerchantController struct{ Svc *services.OrderService }

func NewMerchantController(s *services.OrderService) *MerchantController {
	return &MerchantController{Svc: s}
}

func (h *MerchantController) ListActive(c *gin.Context) {
	orders, err := h.Svc.ListActive(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, orders)
}

func (h *MerchantController) ListHistory(c *gin.Context) {
	orders, err := h.Svc.ListHistory(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, orders)
}

func (h *MerchantController) Accept(c *gin.Context) {
	h.transition(c, h.Svc.Accept)
}

func (h *MerchantController) Reject(c *gin.Context) {
	h.transition(c, h.Svc.Reject)
}

func (h *MerchantController) MarkReady(c *gin.Context) {
	h.transition(c, h.Svc.MarkReady)
}

func (h *MerchantController) MarkDispatched(c *gin.Context) {
	h.transition(c, h.Svc.MarkDispatched)
}

func (h *MerchantController) transition(c *gin.Context, fn func(ownerID, orderID uint) error) {
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

func (h *MerchantController) Stats(c *gin.Context) {
	stats, err := h.Svc.Stats(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, stats)
}
