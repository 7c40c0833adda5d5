package controllers

import (
	"errors"
	"net/http"

	"github.com/RedEye75/SmartZone-Server/constants"
	"github.com/RedEye75/SmartZone-Server/dto"
	"github.com/RedEye75/SmartZone-Server/repositories"
	"github.com/RedEye75/SmartZone-Server/services"
	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	GetToken(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

// GetToken issues a fresh 2-hour token for the query email. Unknown
// identities get 403 and an empty token, never a silent success.
func (c *AuthController) GetToken(ctx *gin.Context) {
	email := ctx.Query("email")

	token, err := c.service.IssueToken(ctx.Request.Context(), email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			ctx.JSON(http.StatusForbidden, dto.TokenResponse{AccessToken: ""})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token})
}
