package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestGetRateLimitType(t *testing.T) {
	tests := []struct {
		path string
		want RateLimitType
	}{
		{"/health", RateLimitTypeHealth},
		{"/api/v1/admin/layout-sessions/:sessionId/stands", RateLimitTypeBuilder},
		{"/api/v1/admin/venue-layouts", RateLimitTypeAdmin},
		{"/api/v1/venue-layouts/:id/summary", RateLimitTypePublic},
		{"/swagger/*any", RateLimitTypeDefault},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := getRateLimitType(tt.path); got != tt.want {
				t.Errorf("getRateLimitType(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsAllowedSkipsRedis(t *testing.T) {
	cfg := &Config{
		Enabled:         true,
		WindowDuration:  time.Minute,
		DefaultRequests: 100,
		BuilderRequests: 600,
		WhitelistedIPs:  []string{"10.0.0.1"},
	}

	tests := []struct {
		name    string
		enabled bool
		ip      string
	}{
		{"disabled", false, "192.168.1.5"},
		{"whitelisted", true, "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := *cfg
			c.Enabled = tt.enabled
			// a nil client would fail the check if Redis were consulted
			limiter := NewRateLimiter(nil, &c)

			result, err := limiter.IsAllowed(context.Background(), tt.ip, RateLimitTypeBuilder)
			if err != nil {
				t.Fatalf("IsAllowed: %v", err)
			}
			if !result.Allowed || result.Limit != 600 || result.Remaining != 600 {
				t.Errorf("result = %+v, want allowed with 600 remaining", result)
			}
		})
	}
}

func TestBuildKey(t *testing.T) {
	if got := buildKey(RateLimitTypePublic, "1.2.3.4"); got != "venuebuilder:ratelimit:public:1.2.3.4" {
		t.Errorf("buildKey = %q", got)
	}
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"forwarded", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"}, "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.4"}, "198.51.100.4"},
		{"garbage header", map[string]string{"X-Forwarded-For": "not-an-ip"}, "192.0.2.1"},
		{"remote addr", nil, "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}

			if got := getClientIP(c); got != tt.want {
				t.Errorf("getClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
