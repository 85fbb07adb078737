package response

import (
	"github.com/gin-gonic/gin"
)

// Every response body is one of two shapes:
//
//	{ "success": true, ...payload }
//	{ "success": false, "message": "..." }
//
// Status codes are chosen by the caller; nothing here decides them.

// Success writes the success shape with the payload fields merged at the
// top level, e.g. Success(c, 200, gin.H{"count": n, "data": list}).
func Success(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error writes the error shape. Never emit raw errors to the boundary.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
