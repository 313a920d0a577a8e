package server

import (
	"net/http"
	"strings"

	"tutorbook/internal/api"

	"github.com/gin-gonic/gin"
)

const preflightMaxAge = "86400"

// corsMiddleware opens an endpoint to any origin. Preflight requests are
// answered here with the endpoint's own method list and never reach the
// handler.
func corsMiddleware(methods []string) gin.HandlerFunc {
	allowMethods := strings.Join(methods, ", ")

	return func(c *gin.Context) {
		allowAnyOrigin(c)

		if c.Request.Method == http.MethodOptions {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Methods", allowMethods)
			h.Set("Access-Control-Allow-Headers", "Content-Type")
			h.Set("Access-Control-Max-Age", preflightMaxAge)
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

func allowAnyOrigin(c *gin.Context) {
	h := c.Writer.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Content-Type", "application/json; charset=utf-8")
}

// noRoute catches what the router could not match. A known endpoint path
// reached with a method gin does not route (a custom verb, or POST on
// /bookings/summary) is answered with 405 like any other unsupported method.
func noRoute(endpoints map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !endpoints[c.Request.URL.Path] {
			c.AbortWithStatusJSON(http.StatusNotFound, api.ErrorResponse{Error: "not found"})
			return
		}

		allowAnyOrigin(c)
		api.RespondError(c, api.MethodNotSupported())
	}
}
