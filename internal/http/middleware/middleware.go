package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/tawsil-app/ops-dashboard/internal/auth"
	"github.com/tawsil-app/ops-dashboard/internal/http/ban"
	rl "github.com/tawsil-app/ops-dashboard/internal/http/rate_limiter"
	"github.com/tawsil-app/ops-dashboard/internal/redissvc"
)

type contextKey string

const permissionsKey = contextKey("permissions")

var redisService *redissvc.RedisService

func SetRedisService(rs *redissvc.RedisService) {
	redisService = rs
}

// Auth validates the bearer token and attaches the permission set derived
// from the token role to the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get("Authorization")
		if !strings.HasPrefix(authorization, "Bearer ") {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}

		_, claims, err := auth.TokenClaims(authorization)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		role, _ := claims["role"].(string)

		ctx := context.WithValue(r.Context(), permissionsKey, auth.PermissionsForRole(role))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RateLimit enforces the per-client limiter and records a ban event once a
// client keeps hammering a blocked route.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		limiter := rl.GetVisitor(ip)
		if !limiter.Allow() {
			if redisService != nil {
				_ = ban.SendBanAlertEmail(ip, r.URL.Path, 1, r)
			}
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// GetPermissions returns the permission set attached by Auth. Requests that
// never passed Auth carry the zero value, which allows nothing.
func GetPermissions(r *http.Request) auth.Permissions {
	if val, ok := r.Context().Value(permissionsKey).(auth.Permissions); ok {
		return val
	}
	return auth.Permissions{}
}
