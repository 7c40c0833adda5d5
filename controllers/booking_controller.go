package controllers

import (
	"net/http"

	"github.com/RedEye75/SmartZone-Server/constants"
	"github.com/RedEye75/SmartZone-Server/dto"
	"github.com/RedEye75/SmartZone-Server/models"
	"github.com/RedEye75/SmartZone-Server/services"
	"github.com/gin-gonic/gin"
)

type IBookingController interface {
	FindByEmail(ctx *gin.Context)
	Create(ctx *gin.Context)
}

type BookingController struct {
	service services.IBookingService
}

func NewBookingController(service services.IBookingService) IBookingController {
	return &BookingController{service: service}
}

// FindByEmail lists bookings for the query email. The query email must
// match the verified token email; anything else is forbidden regardless
// of what bookings exist.
func (c *BookingController) FindByEmail(ctx *gin.Context) {
	email := ctx.Query("email")
	decodedEmail := ctx.GetString(constants.ContextEmailKey)

	if email != decodedEmail {
		ctx.JSON(http.StatusForbidden, dto.MessageResponse{Message: constants.ErrForbiddenAccess})
		return
	}

	bookings, err := c.service.FindByEmail(ctx.Request.Context(), email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, bookings)
}

func (c *BookingController) Create(ctx *gin.Context) {
	var booking models.Booking
	if err := ctx.ShouldBindJSON(&booking); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: constants.ErrInvalidInput})
		return
	}

	result, err := c.service.Create(ctx.Request.Context(), booking)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
