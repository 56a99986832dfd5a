package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowMethods = "POST, OPTIONS, GET, PUT, DELETE"
	corsAllowHeaders = "Content-Type"
)

// CORS marks every response as readable from any origin and decorates
// preflight requests with the allowed methods and headers.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", corsAllowMethods)
			c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
		}
		c.Next()
	}
}
