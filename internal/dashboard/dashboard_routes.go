package dashboard

import (
	"github.com/i-gitit/employee-dashboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	sessions := r.Group("/dashboard/sessions")
	{
		sessions.POST("",
			middleware.RateLimitByIP(2, 5),
			handler.CreateSession,
		)

		sessions.GET("/:id",
			middleware.RateLimitByIP(10, 30),
			handler.GetView,
		)

		sessions.PATCH("/:id/filters",
			middleware.RateLimitByIP(10, 30),
			handler.ApplyFilters,
		)

		sessions.POST("/:id/reset",
			middleware.RateLimitByIP(10, 30),
			handler.Reset,
		)
	}
}
