package utils

import "github.com/gin-gonic/gin"

// JSONMessage writes the {message} envelope mutation endpoints return.
func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// JSONError writes the structured error envelope the frontend expects.
func JSONError(c *gin.Context, code int, errCode, message string) {
	c.JSON(code, gin.H{"error": gin.H{"code": errCode, "message": message}})
}
