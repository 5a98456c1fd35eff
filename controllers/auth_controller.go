package controllers

import (
	"github.com/carlossbezerra/SuperDelivery/pkg/resp"
	"github.com/carlossbezerra/SuperDelivery/services"
	"github.com/carlossbezerra/SuperDelivery/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// GET /auth/profiles — the demo profile selector.
func (h *AuthController) Profiles(c *gin.Context) {
	users, err := h.Svc.Profiles()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, users)
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, token, err := h.Svc.Login(body.Email, body.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// POST /auth/logout — ends the session; a customer's cart goes with it.
func (h *AuthController) Logout(c *gin.Context) {
	if err := h.Svc.Logout(utils.CurrentUserID(c), utils.CurrentRole(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"loggedOut": true})
}
