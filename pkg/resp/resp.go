package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, msg, key string, data any) {
	c.JSON(http.StatusCreated, gin.H{"status": true, "message": msg, key: data})
}

func Updated(c *gin.Context, msg, key string, data any) {
	c.JSON(http.StatusOK, gin.H{"status": true, "message": msg, key: data})
}

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"message": msg})
}

// Unprocessable reports validation failures, field -> messages.
func Unprocessable(c *gin.Context, fields map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"status": false, "message": fields})
}

func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": err.Error()})
}
