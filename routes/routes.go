package routes

import (
	"net/http"

	"github.com/capDAOIZ/api-mario/controllers"
	"github.com/capDAOIZ/api-mario/middlewares"
	"github.com/capDAOIZ/api-mario/repository"
	"github.com/capDAOIZ/api-mario/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewRouter builds the engine with logging, recovery and CORS in place.
func NewRouter(db *gorm.DB, log *zap.Logger, origins ...string) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.Recovery(log))
	r.Use(middlewares.CORSMiddleware(origins...))

	RegisterRoutes(r, db, log)
	return r
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log *zap.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	dishRepo := repository.NewDishRepository(db)
	dishSvc := services.NewDishService(dishRepo, log.Named("dishes"))
	dishCtrl := controllers.NewDishController(dishSvc)

	d := r.Group("/dishes")
	{
		d.GET("", dishCtrl.List)
		d.POST("", dishCtrl.CreateOrReplace)
		d.GET("/:id", dishCtrl.Get)
		d.PUT("/:id", dishCtrl.Update)
		d.DELETE("/:id", dishCtrl.Delete)
		d.GET("/:id/photo", dishCtrl.Photo)
	}
}
