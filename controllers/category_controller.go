package controllers

import (
	"net/http"

	"github.com/RedEye75/SmartZone-Server/constants"
	"github.com/RedEye75/SmartZone-Server/dto"
	"github.com/RedEye75/SmartZone-Server/services"
	"github.com/gin-gonic/gin"
)

type ICategoryController interface {
	FindAll(ctx *gin.Context)
	FindNames(ctx *gin.Context)
}

type CategoryController struct {
	service services.ICategoryService
}

func NewCategoryController(service services.ICategoryService) ICategoryController {
	return &CategoryController{service: service}
}

func (c *CategoryController) FindAll(ctx *gin.Context) {
	categories, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

func (c *CategoryController) FindNames(ctx *gin.Context) {
	names, err := c.service.FindNames(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, names)
}
