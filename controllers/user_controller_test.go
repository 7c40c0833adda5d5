package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RedEye75/SmartZone-Server/models"
	"github.com/RedEye75/SmartZone-Server/repositories"
	"github.com/RedEye75/SmartZone-Server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// memUserRepository keeps user documents in a map so controller tests can
// exercise the real service logic end to end.
type memUserRepository struct {
	users map[string]models.User
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{users: map[string]models.User{}}
}

func (m *memUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	all := []models.User{}
	for _, u := range m.users {
		all = append(all, u)
	}
	return all, nil
}

func (m *memUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &u, nil
}

func (m *memUserRepository) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	matched := []models.User{}
	for _, u := range m.users {
		if u.Role == role {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

func (m *memUserRepository) Insert(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	m.users[user.Email] = user
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (m *memUserRepository) SetVerified(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memUserRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func setupUserRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	controller := NewUserController(services.NewUserService(newMemUserRepository()))

	r := gin.New()
	r.GET("/users", controller.FindAll)
	r.POST("/users", controller.Create)
	r.GET("/buyer", controller.FindBuyers)
	r.GET("/seller", controller.FindSellers)
	r.GET("/users/admin/:email", controller.IsAdmin)
	r.GET("/users/seller/:email", controller.IsSeller)
	r.PUT("/users/admin/:id", controller.Verify)
	r.DELETE("/seller/:id", controller.Delete)
	return r
}

func TestCreateThenRoleChecks(t *testing.T) {
	tests := []struct {
		name             string
		body             string
		expectedIsAdmin  string
		expectedIsSeller string
	}{
		{
			name:             "Seller registration",
			body:             `{"email":"a@x.com","role":"seller"}`,
			expectedIsAdmin:  `{"isAdmin":false}`,
			expectedIsSeller: `{"isSeller":true}`,
		},
		{
			name:             "Admin registration",
			body:             `{"email":"a@x.com","role":"admin"}`,
			expectedIsAdmin:  `{"isAdmin":true}`,
			expectedIsSeller: `{"isSeller":false}`,
		},
		{
			name:             "Buyer registration",
			body:             `{"email":"a@x.com","role":"buyer"}`,
			expectedIsAdmin:  `{"isAdmin":false}`,
			expectedIsSeller: `{"isSeller":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupUserRouter()

			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "InsertedID")

			w = httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/admin/a@x.com", nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.expectedIsAdmin, w.Body.String())

			w = httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/seller/a@x.com", nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.expectedIsSeller, w.Body.String())
		})
	}
}

func TestRoleChecksForUnknownEmail(t *testing.T) {
	r := setupUserRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/admin/ghost@x.com", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isAdmin":false}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/seller/ghost@x.com", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isSeller":false}`, w.Body.String())
}

func TestFindByRoleListsOnlyThatRole(t *testing.T) {
	r := setupUserRouter()

	for _, body := range []string{
		`{"email":"s@x.com","role":"seller"}`,
		`{"email":"b@x.com","role":"buyer"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/seller", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "s@x.com")
	assert.NotContains(t, w.Body.String(), "b@x.com")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/buyer", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "b@x.com")
	assert.NotContains(t, w.Body.String(), "s@x.com")
}

func TestVerifyRejectsMalformedID(t *testing.T) {
	r := setupUserRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/users/admin/not-an-id", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid id"}`, w.Body.String())
}

func TestVerifyRelaysUpdateAck(t *testing.T) {
	r := setupUserRouter()

	id := primitive.NewObjectID().Hex()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/users/admin/"+id, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"MatchedCount":1`)
}

func TestDeleteRelaysAck(t *testing.T) {
	r := setupUserRouter()

	id := primitive.NewObjectID().Hex()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/seller/"+id, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"DeletedCount":1`)
}
