package middlewares

import (
	"net/http"

	"github.com/RedEye75/SmartZone-Server/constants"
	"github.com/RedEye75/SmartZone-Server/dto"
	"github.com/RedEye75/SmartZone-Server/services"
	"github.com/gin-gonic/gin"
)

// AdminOnly must run after VerifyJWT so the verified email is present in
// the context. The role check reads the users collection; token claims
// never decide it.
func AdminOnly(userService services.IUserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		email := ctx.GetString(constants.ContextEmailKey)
		if email == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: constants.ErrUnauthorizedAccess})
			return
		}

		user, err := userService.FindByEmail(ctx.Request.Context(), email)
		if err != nil || user.Role != constants.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.MessageResponse{Message: constants.ErrForbiddenAccess})
			return
		}

		ctx.Next()
	}
}
