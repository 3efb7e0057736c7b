package employee

import (
	"employee-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.RequestID())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", middleware.RateLimitByIP(10, 30), handler.GetAll)
		employees.GET("/count", middleware.RateLimitByIP(10, 30), handler.Count)
		employees.GET("/:id", middleware.RateLimitByIP(10, 30), handler.GetByID)

		employees.POST("", middleware.RateLimitByIP(1, 3), middleware.Idempotency(rdb), handler.Create)
		employees.POST("/bulk", middleware.RateLimitByIP(0.5, 1), middleware.Idempotency(rdb), handler.CreateBulk)

		employees.PUT("/:id", middleware.RateLimitByIP(1, 3), handler.Update)
		employees.PATCH("/:id", middleware.RateLimitByIP(1, 3), handler.Patch)
		employees.DELETE("/:id", middleware.RateLimitByIP(0.5, 1), handler.Delete)
		employees.DELETE("", middleware.RateLimitByIP(0.1, 1), handler.DeleteAll)

		employees.GET("/search/email", middleware.RateLimitByIP(10, 30), handler.SearchByEmail)
		employees.GET("/search/salary", middleware.RateLimitByIP(10, 30), handler.SearchBySalaryRange)
		employees.GET("/filter/dept-and-gender", middleware.RateLimitByIP(10, 30), handler.FilterByDeptAndGender)
		employees.GET("/filter/dept-or-gender", middleware.RateLimitByIP(10, 30), handler.FilterByDeptOrGender)
		employees.GET("/filter/gender", middleware.RateLimitByIP(10, 30), handler.FilterByGender)
		employees.GET("/filter/salary-above", middleware.RateLimitByIP(10, 30), handler.FilterBySalaryAbove)
		employees.GET("/filter/salary-below", middleware.RateLimitByIP(10, 30), handler.FilterBySalaryBelow)
		employees.GET("/name-salary", middleware.RateLimitByIP(10, 30), handler.NameSalary)
		employees.GET("/name-salary/by-dept", middleware.RateLimitByIP(10, 30), handler.NameSalaryByDept)

		// Escape hatches: these operate directly against storage and expect
		// canonical dept/gender values.
		employees.PATCH("/:id/name", middleware.RateLimitByIP(1, 3), handler.Rename)
		employees.DELETE("/by-dept-gender", middleware.RateLimitByIP(0.5, 1), handler.DeleteByDeptAndGender)
		employees.PATCH("/increase-salary", middleware.RateLimitByIP(0.5, 1), handler.IncreaseSalary)
	}
}
