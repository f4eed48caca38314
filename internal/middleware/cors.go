package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS restricts browser access to the configured origins. A single "*" entry
// keeps the permissive development behavior; in production the list should
// name the quotation frontend's origins.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	comodin := false
	permitidos := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		o = strings.TrimSpace(o)
		switch {
		case o == "*":
			comodin = true
		case o != "":
			permitidos[o] = true
		}
	}

	return func(c *gin.Context) {
		origen := c.GetHeader("Origin")
		switch {
		case comodin:
			c.Header("Access-Control-Allow-Origin", "*")
		case permitidos[origen]:
			c.Header("Access-Control-Allow-Origin", origen)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
