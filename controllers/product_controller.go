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

type IProductController interface {
	FindAll(ctx *gin.Context)
	FindByCategory(ctx *gin.Context)
	Create(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ProductController struct {
	service services.IProductService
}

func NewProductController(service services.IProductService) IProductController {
	return &ProductController{service: service}
}

func (c *ProductController) FindAll(ctx *gin.Context) {
	products, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// FindByCategory lists products whose category reference equals the path
// id.
func (c *ProductController) FindByCategory(ctx *gin.Context) {
	products, err := c.service.FindByCategory(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (c *ProductController) Create(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: constants.ErrInvalidInput})
		return
	}

	result, err := c.service.Create(ctx.Request.Context(), product)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Delete relays the raw acknowledgment; an unknown id yields a zero
// DeletedCount with status 200.
func (c *ProductController) Delete(ctx *gin.Context) {
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
