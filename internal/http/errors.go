// Package httpapi exposes the HTTP API layer of the service.
package httpapi

import "github.com/gin-gonic/gin"

// jsonError represents a JSON error payload.
type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSONError aborts the request with a JSON error payload and the given
// status code.
func WriteJSONError(c *gin.Context, status int, message, details string) {
	c.AbortWithStatusJSON(status, jsonError{Error: message, Details: details})
}
