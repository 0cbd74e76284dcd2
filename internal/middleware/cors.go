package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the local development frontends to call the API. Any request
// header is permitted; preflight responses are cacheable for an hour.
func CORS() gin.HandlerFunc {
	corsHandler := cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000", // React dev server (default)
			"http://localhost:5173", // Vite dev server
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	})

	return func(c *gin.Context) {
		// With credentials enabled browsers treat a literal "*" allow-headers
		// value as the header name "*", so echo the requested headers instead.
		// AllowHeaders is left empty above to keep the cors handler from
		// overwriting the echoed value.
		if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
			c.Header("Access-Control-Allow-Headers", requested)
		}
		corsHandler(c)
	}
}
