package controllers

import (
	"strconv"

	"github.com/carlossbezerra/SuperDelivery/pkg/resp"
	"github.com/carlossbezerra/SuperDelivery/services"
	"github.com/carlossbezerra/SuperDelivery/utils"
	"github.com/gin-gonic/gin"
)

type ChatController struct{ Svc *services.ChatService }

func NewChatController(s *services.ChatService) *ChatController {
	return &ChatController{Svc: s}
}

// GET /orders/:id/messages
func (h *ChatController) History(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	userID, role := utils.CurrentUserID(c), utils.CurrentRole(c)
	ok, err := h.Svc.CanAccess(userID, role, uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !ok {
		resp.Forbidden(c, "not a participant of this order")
		return
	}
	messages, err := h.Svc.History(uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, messages)
}

type sendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// POST /orders/:id/messages — REST fallback when the socket is not open.
func (h *ChatController) Send(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var body sendMessageRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	userID, role := utils.CurrentUserID(c), utils.CurrentRole(c)
	ok, err := h.Svc.CanAccess(userID, role, uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !ok {
		resp.Forbidden(c, "not a participant of this order")
		return
	}
	msg, err := h.Svc.Send(uint(id), userID, role, body.Body)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, msg)
}
