// Package response writes the JSON error bodies shared by handlers and middleware.
package response

import "github.com/gin-gonic/gin"

// Error writes {"error": message}.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// FieldError writes {"error": message, "field": field}; an empty field falls back to Error.
func FieldError(c *gin.Context, status int, field, message string) {
	if field == "" {
		Error(c, status, message)
		return
	}
	c.JSON(status, gin.H{"error": message, "field": field})
}

// Abort writes {"error": message} and stops the handler chain.
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
