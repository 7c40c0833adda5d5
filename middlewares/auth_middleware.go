package middlewares

import (
	"net/http"
	"strings"

	"github.com/RedEye75/SmartZone-Server/constants"
	"github.com/RedEye75/SmartZone-Server/dto"
	"github.com/RedEye75/SmartZone-Server/services"
	"github.com/gin-gonic/gin"
)

// VerifyJWT rejects requests without an Authorization header with 401 and
// requests carrying a malformed, invalid, or expired bearer token with
// 403. On success the decoded email lands in the context for downstream
// guards and handlers.
func VerifyJWT(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: constants.ErrUnauthorizedAccess})
			return
		}

		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.MessageResponse{Message: constants.ErrForbiddenAccess})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		email, err := authService.GetEmailFromToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.MessageResponse{Message: constants.ErrForbiddenAccess})
			return
		}

		ctx.Set(constants.ContextEmailKey, email)
		ctx.Next()
	}
}
