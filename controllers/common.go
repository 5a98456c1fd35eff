package controllers

import (
	"errors"

	"github.com/carlossbezerra/SuperDelivery/pkg/resp"
	"github.com/carlossbezerra/SuperDelivery/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// writeServiceError maps service errors onto HTTP responses so every
// controller reports the same way.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrUnavailable):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUnknownItem),
		errors.Is(err, services.ErrUnknownOrder),
		errors.Is(err, services.ErrUnknownDelivery),
		errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrCartConflict),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrDeliveryClaimed),
		errors.Is(err, services.ErrCourierBusy),
		errors.Is(err, services.ErrCourierOffline):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
