package employee

import (
	"github.com/i-gitit/employee-dashboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("",
			middleware.RateLimitByIP(10, 30),
			handler.GetAll,
		)

		employees.GET("/:id",
			middleware.RateLimitByIP(10, 30),
			handler.GetById,
		)

		employees.GET("/:id/leave-balance",
			middleware.RateLimitByIP(10, 30),
			handler.GetLeaveBalance,
		)

		// Refresh bypasses the staleness window, so keep it tight.
		employees.POST("/refresh",
			middleware.RateLimitByIP(0.5, 2),
			handler.Refresh,
		)
	}

	r.GET("/departments",
		middleware.RateLimitByIP(10, 30),
		handler.GetDepartments,
	)
}
