package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/money_tracker/internal/utils"
)

const testSecret = "test-secret"

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.Default()))
	r.GET("/", append(handlers, func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.String(http.StatusOK, userID)
	})...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	valid, err := utils.GenerateJWT("user-1", testSecret, time.Hour, "test")
	require.NoError(t, err)
	expired, err := utils.GenerateJWT("user-1", testSecret, -time.Minute, "test")
	require.NoError(t, err)
	foreign, err := utils.GenerateJWT("user-1", "other-secret", time.Hour, "test")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid", "Bearer " + valid, http.StatusOK, "user-1"},
		{"lowercase scheme", "bearer " + valid, http.StatusOK, "user-1"},
		{"missing", "", http.StatusUnauthorized, "Authorization header required"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Bearer {token}"},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "Token has expired"},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized, "Invalid token"},
	}
	router := newRouter(AuthMiddleware(testSecret))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestStructuredLoggingMiddleware_RequestID(t *testing.T) {
	router := newRouter()

	sent := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, sent)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, sent, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	issued := w.Header().Get(RequestIDHeader)
	assert.NotEqual(t, "not-a-uuid", issued)
	_, err := uuid.Parse(issued)
	assert.NoError(t, err)
}

func TestRateLimit(t *testing.T) {
	instance, err := NewMemoryLimiter("2-M")
	require.NoError(t, err)
	router := newRouter(RateLimit(instance))

	codes := make([]int, 0, 3)
	for range 3 {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewMemoryLimiter_BadRate(t *testing.T) {
	_, err := NewMemoryLimiter("lots")
	assert.Error(t, err)
}
