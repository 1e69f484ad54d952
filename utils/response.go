package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONListResponse sends a structured JSON response for collections,
// carrying the item count alongside the data
func JSONListResponse(c *gin.Context, status int, data any, count int, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"count":   count,
		"data":    data,
	})
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
