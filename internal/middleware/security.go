package middleware

import (
	"net/http"
)

// SecurityHeaders sets baseline security headers on every response
// (XSS, clickjacking, MIME sniffing).
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'self'; img-src 'self' https: data:; style-src 'self' https://cdn.jsdelivr.net")

		next.ServeHTTP(w, r)
	})
}
