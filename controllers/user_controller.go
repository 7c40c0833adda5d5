package controllers

import (
	"net/http"

	"github.com/RedEye75/SmartZone-Server/constants"
	"github.com/RedEye75/SmartZone-Server/dto"
	"github.com/RedEye75/SmartZone-Server/models"
	"github.com/RedEye75/SmartZone-Server/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IUserController interface {
	FindAll(ctx *gin.Context)
	FindBuyers(ctx *gin.Context)
	FindSellers(ctx *gin.Context)
	Create(ctx *gin.Context)
	IsAdmin(ctx *gin.Context)
	IsSeller(ctx *gin.Context)
	Verify(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type UserController struct {
	service services.IUserService
}

func NewUserController(service services.IUserService) IUserController {
	return &UserController{service: service}
}

func (c *UserController) FindAll(ctx *gin.Context) {
	users, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, users)
}

func (c *UserController) FindBuyers(ctx *gin.Context) {
	c.findByRole(ctx, constants.RoleBuyer)
}

func (c *UserController) FindSellers(ctx *gin.Context) {
	c.findByRole(ctx, constants.RoleSeller)
}

func (c *UserController) findByRole(ctx *gin.Context, role string) {
	users, err := c.service.FindByRole(ctx.Request.Context(), role)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// Create registers a user document as supplied and relays the insert
// acknowledgment.
func (c *UserController) Create(ctx *gin.Context) {
	var user models.User
	if err := ctx.ShouldBindJSON(&user); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: constants.ErrInvalidInput})
		return
	}

	result, err := c.service.Create(ctx.Request.Context(), user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *UserController) IsAdmin(ctx *gin.Context) {
	isAdmin, err := c.service.IsAdmin(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, dto.AdminCheckResponse{IsAdmin: isAdmin})
}

func (c *UserController) IsSeller(ctx *gin.Context) {
	isSeller, err := c.service.IsSeller(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, dto.SellerCheckResponse{IsSeller: isSeller})
}

// Verify upserts status=verified on the user id and relays the update
// acknowledgment.
func (c *UserController) Verify(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: constants.ErrInvalidID})
		return
	}

	result, err := c.service.Verify(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Delete removes a user by id. Both the seller and buyer delete routes
// land here.
func (c *UserController) Delete(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: constants.ErrInvalidID})
		return
	}

	result, err := c.service.Delete(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
