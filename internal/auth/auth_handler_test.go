package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-salary/internal/auth"
	autherrors "go-salary/internal/auth/errors"
	authMock "go-salary/internal/auth/mock"
	"go-salary/internal/domain"
	"go-salary/internal/middleware"
	"go-salary/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var res map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.POST("/login", handler.Login)

	t.Run("Success Login", func(t *testing.T) {
		reqBody := auth.LoginRequest{Email: "admin@example.com", Password: "secret"}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			Login(gomock.Any(), reqBody).
			Return(auth.LoginResponse{
				AccessToken: "access-token",
				TokenType:   "Bearer",
				User:        auth.AuthResponse{ID: 1, Email: reqBody.Email, Role: domain.RoleAdmin},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		res := decodeBody(t, w)
		data := res["data"].(map[string]interface{})
		assert.Equal(t, "access-token", data["access_token"])
		assert.Equal(t, "admin@example.com", data["user"].(map[string]interface{})["email"])
	})

	t.Run("Failed Login - Invalid Credentials", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(auth.LoginResponse{}, autherrors.ErrInvalidCredentials)

		body, _ := json.Marshal(auth.LoginRequest{Email: "wrong@test.com", Password: "123"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		res := decodeBody(t, w)
		assert.Equal(t, "INVALID_CREDENTIALS", res["error"].(map[string]interface{})["code"])
	})

	t.Run("Failed Login - Validation Error", func(t *testing.T) {
		// service tidak boleh dipanggil
		body := []byte(`{"email": "invalid-email"}`)
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Failed Login - Malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.POST("/logout", func(c *gin.Context) {
		c.Set(middleware.ContextKeyAccessToken, "token-abc")
		c.Next()
	}, handler.Logout)

	mockService.EXPECT().Logout(gomock.Any(), "token-abc").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	res := decodeBody(t, w)
	assert.Equal(t, "Logout success.", res["data"].(map[string]interface{})["message"])
}

func TestHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	caller := domain.Identity{UserID: 3, Email: "root@example.com", Role: domain.RoleAdmin}

	t.Run("returns current identity", func(t *testing.T) {
		router := setupAuthRouter()
		router.GET("/me", func(c *gin.Context) {
			c.Request = c.Request.WithContext(contextutil.WithIdentity(c.Request.Context(), caller))
			c.Next()
		}, handler.Me)

		mockService.EXPECT().GetMe(gomock.Any(), caller).
			Return(auth.AuthResponse{ID: 3, Email: caller.Email, Name: "Root", Role: domain.RoleAdmin}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Root", decodeBody(t, w)["data"].(map[string]interface{})["name"])
	})

	t.Run("no identity in context", func(t *testing.T) {
		router := setupAuthRouter()
		router.GET("/me", handler.Me)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
