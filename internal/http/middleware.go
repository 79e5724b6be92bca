package http

import (
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/hubhand/storefront/internal/auth"
	rl "github.com/hubhand/storefront/internal/http/rate_limiter"
)

// ViewerMiddleware lifts an optional bearer token into the request context
// as viewer claims. The token is not authenticated here; the data store's
// row-level policies are the enforcement point. A missing or undecodable
// token simply means an anonymous viewer.
func ViewerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenStr := strings.TrimPrefix(header, "Bearer ")
			claims, err := auth.ClaimsFromToken(tokenStr)
			if err != nil {
				log.Printf("ignoring undecodable bearer token: %v", err)
			} else {
				r = r.WithContext(auth.WithViewer(r.Context(), claims))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RateLimitMiddleware applies a per-IP token bucket in front of the API.
func RateLimitMiddleware(limiter *rl.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !limiter.Visitor(ip).Allow() {
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
