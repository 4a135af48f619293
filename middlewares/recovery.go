package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panic into the generic 500 body {"status": false, "message": ...}.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		msg := fmt.Sprint(recovered)
		log.Error("panic recovered", zap.String("path", c.Request.URL.Path), zap.String("panic", msg))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"status": false, "message": msg})
	})
}
