package controllers

import (
	"strconv"

	"github.com/carlossbezerra/SuperDelivery/pkg/resp"
	"github.com/carlossbezerra/SuperDelivery/services"
	"github.com/carlossbezerra/SuperDelivery/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	cart, totals, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "totals": totals})
}

// POST /cart/items — adds one unit of a product.
func (h *CartController) Add(c *gin.Context) {
	var body struct {
		ProductID uint `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(utils.CurrentUserID(c), body.ProductID); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"added": true})
}

// PATCH /cart/items/:id — qty is a pointer so an explicit 0 binds.
func (h *CartController) UpdateQty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var body struct {
		Qty *int `json:"qty" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetQuantity(utils.CurrentUserID(c), uint(id), *body.Qty); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Svc.RemoveItem(utils.CurrentUserID(c), uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
