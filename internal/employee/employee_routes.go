package employee

import (
	"employee-directory/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Writes get a tighter per-client budget than reads.
const (
	writeRateLimit rate.Limit = 5
	writeRateBurst            = 10
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	writeLimit := middleware.RateLimitByClient(writeRateLimit, writeRateBurst)

	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", handler.GetAll)
		employees.GET("/options", handler.GetOptions)
		employees.GET("/:id", handler.GetByID)
		employees.POST("", writeLimit, handler.Create)
		employees.PUT("/:id", writeLimit, handler.Update)
		employees.PATCH("/:id", writeLimit, handler.Update)
		employees.DELETE("/:id", writeLimit, handler.Delete)
	}
}
