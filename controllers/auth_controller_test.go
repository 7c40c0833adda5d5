package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RedEye75/SmartZone-Server/models"
	"github.com/RedEye75/SmartZone-Server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(repo *memUserRepository) (*gin.Engine, services.IAuthService) {
	gin.SetMode(gin.TestMode)

	authService := services.NewAuthService(repo, "test-secret", 2*time.Hour)
	controller := NewAuthController(authService)

	r := gin.New()
	r.GET("/jwt", controller.GetToken)
	return r, authService
}

func TestGetTokenFailsClosedForUnknownEmail(t *testing.T) {
	r, _ := setupAuthRouter(newMemUserRepository())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jwt?email=ghost@x.com", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"accessToken":""}`, w.Body.String())
}

func TestGetTokenForKnownEmail(t *testing.T) {
	repo := newMemUserRepository()
	repo.users["a@x.com"] = models.User{Email: "a@x.com", Role: "buyer"}
	r, authService := setupAuthRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jwt?email=a@x.com", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, decodeBody(w, &body))
	require.NotEmpty(t, body.AccessToken)

	email, err := authService.GetEmailFromToken(body.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}
