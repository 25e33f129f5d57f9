package app

import (
	"net/http"

	"github.com/i-gitit/employee-dashboard/internal/config"
	"github.com/i-gitit/employee-dashboard/internal/dashboard"
	"github.com/i-gitit/employee-dashboard/internal/employee"
	"github.com/i-gitit/employee-dashboard/internal/middleware"
	"github.com/i-gitit/employee-dashboard/internal/shared/cache"
	"github.com/i-gitit/employee-dashboard/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires the fetch gateway, the query cache, and both HTTP modules
// onto the router.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	logger := zap.L()

	repo, err := employee.NewDatasetRepository(cfg.DatasetPath, cfg.FetchDelay)
	if err != nil {
		return err
	}

	var store cache.Store = cache.NewMemoryStore()
	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return err
		}
		store = cache.NewRedisStore(rdb, cfg.StaleWindow)
		logger.Info("redis cache store enabled", zap.String("addr", cfg.RedisAddr))
	}
	queryCache := cache.New(store, cfg.StaleWindow)

	employeeService := employee.NewService(repo, queryCache)
	employeeHandler := employee.NewHandler(employeeService)

	sessions := dashboard.NewSessionStore(cfg.SessionTTL)
	dashboardHandler := dashboard.NewHandler(employeeService, sessions)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	api.Use(middleware.ContextLogger(logger))
	{
		employee.RegisterRoutes(api, employeeHandler)
		dashboard.RegisterRoutes(api, dashboardHandler)
	}

	return nil
}
