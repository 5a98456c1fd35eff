package controllers

import (
	"strconv"

	"github.com/carlossbezerra/SuperDelivery/pkg/resp"
	"github.com/carlossbezerra/SuperDelivery/services"
	"github.com/carlossbezerra/SuperDelivery/utils"
	"github.com/gin-gonic/gin"
)

type ProductController struct{ Svc *services.ProductService }

func NewProductController(s *services.ProductService) *ProductController {
	return &ProductController{Svc: s}
}

func (h *ProductController) List(c *gin.Context) {
	products, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, products)
}

func (h *ProductController) Create(c *gin.Context) {
	var in services.ProductIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	product, err := h.Svc.Create(utils.CurrentUserID(c), &in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, product)
}

func (h *ProductController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var in services.ProductIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	product, err := h.Svc.Update(utils.CurrentUserID(c), uint(id), &in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, product)
}

func (h *ProductController) ToggleAvailability(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	product, err := h.Svc.ToggleAvailability(utils.CurrentUserID(c), uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, product)
}

func (h *ProductController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Svc.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": uint(id)})
}
