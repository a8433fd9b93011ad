package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func setupAuthRouter() (*gin.Engine, *uuid.UUID) {
	gin.SetMode(gin.TestMode)
	var captured uuid.UUID
	router := gin.New()
	router.Use(Auth(testSecret))
	router.GET("/protected", func(c *gin.Context) {
		if v, ok := c.Get("user_id"); ok {
			captured = v.(uuid.UUID)
		}
		c.Status(http.StatusOK)
	})
	return router, &captured
}

func TestAuth_ValidToken(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{
			name:   "user_id claim",
			claims: jwt.MapClaims{"user_id": userID.String(), "exp": time.Now().Add(time.Hour).Unix()},
		},
		{
			name:   "sub claim",
			claims: jwt.MapClaims{"sub": userID.String(), "exp": time.Now().Add(time.Hour).Unix()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, captured := setupAuthRouter()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, tt.claims, testSecret))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, userID, *captured)
		})
	}
}

func TestAuth_Rejections(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic abc123"},
		{name: "garbage token", header: "Bearer not.a.jwt"},
		{
			name:   "wrong signing key",
			header: "Bearer " + signTokenWithSecret(t, userID, "other-secret"),
		},
		{
			name: "expired token",
			header: "Bearer " + signToken(t, jwt.MapClaims{
				"user_id": userID.String(),
				"exp":     time.Now().Add(-time.Hour).Unix(),
			}, testSecret),
		},
		{
			name: "no user claim",
			header: "Bearer " + signToken(t, jwt.MapClaims{
				"exp": time.Now().Add(time.Hour).Unix(),
			}, testSecret),
		},
		{
			name: "user claim is not a uuid",
			header: "Bearer " + signToken(t, jwt.MapClaims{
				"user_id": "bob",
				"exp":     time.Now().Add(time.Hour).Unix(),
			}, testSecret),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupAuthRouter()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func signTokenWithSecret(t *testing.T, userID uuid.UUID, secret string) string {
	return signToken(t, jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}, secret)
}
