package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"venuebuilder/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var secret = []byte("middleware-test-secret")

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func TestParseAccessToken(t *testing.T) {
	valid := jwt.MapClaims{"role": RoleAdmin, "type": "access", "exp": time.Now().Add(time.Hour).Unix()}
	refresh := jwt.MapClaims{"role": RoleAdmin, "type": "refresh", "exp": time.Now().Add(time.Hour).Unix()}
	expired := jwt.MapClaims{"role": RoleAdmin, "type": "access", "exp": time.Now().Add(-time.Hour).Unix()}

	tests := []struct {
		name   string
		header string
		want   error
	}{
		{"missing", "", errMissingHeader},
		{"not bearer", "Token abc", errHeaderFormat},
		{"wrong key", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), valid), errInvalidToken},
		{"expired", "Bearer " + sign(t, jwt.SigningMethodHS256, secret, expired), errInvalidToken},
		{"refresh token", "Bearer " + sign(t, jwt.SigningMethodHS256, secret, refresh), errTokenType},
		{"valid", "Bearer " + sign(t, jwt.SigningMethodHS256, secret, valid), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := parseAccessToken(tt.header, secret)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if tt.want == nil && claims["role"] != RoleAdmin {
				t.Errorf("claims = %v", claims)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWT: config.JWTConfig{Secret: string(secret)}}

	engine := gin.New()
	engine.GET("/admin", JWTAuthWithConfig(cfg), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name string
		role string
		want int
	}{
		{"admin", RoleAdmin, http.StatusNoContent},
		{"user", "USER", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := sign(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{
				"role": tt.role,
				"type": "access",
				"exp":  time.Now().Add(time.Hour).Unix(),
			})
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
