package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers for the static site calling the API from
// another origin. Only the site URL and explicitly configured origins are
// allowed; localhost dev servers are allowed outside production.
func CORSMiddleware(siteURL string, extraOrigins []string, isProduction bool) gin.HandlerFunc {
	allowed := map[string]bool{}
	if siteURL != "" {
		allowed[siteURL] = true
		// Serve both the www and the apex domain
		if strings.HasPrefix(siteURL, "https://www.") {
			allowed["https://"+strings.TrimPrefix(siteURL, "https://www.")] = true
		}
	}
	for _, o := range extraOrigins {
		allowed[o] = true
	}

	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Empty origin (same-origin requests) - allow
		isAllowed := origin == "" || allowed[origin] || (!isProduction && devOrigins[origin])

		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Accept, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			if isAllowed {
				c.AbortWithStatus(http.StatusNoContent)
			} else {
				c.AbortWithStatus(http.StatusForbidden)
			}
			return
		}

		c.Next()
	}
}
