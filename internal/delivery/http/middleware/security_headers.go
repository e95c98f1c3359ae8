package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const apiCSP = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'; form-action 'none'"

// SecurityHeadersMiddleware adds the standard hardening headers. The
// swagger UI serves inline scripts, so paths under swaggerPrefix skip the
// strict CSP.
func SecurityHeadersMiddleware(swaggerPrefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")

		if swaggerPrefix == "" || !strings.HasPrefix(c.Request.URL.Path, swaggerPrefix) {
			c.Header("Content-Security-Policy", apiCSP)
		}

		// submissions carry personal data
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Header("Cache-Control", "no-store")
		}

		c.Next()
	}
}
