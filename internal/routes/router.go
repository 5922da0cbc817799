package routes

import (
	"net/http"

	"fuel-sense/internal/config"
	"fuel-sense/internal/delivery/http/handler"
	"fuel-sense/internal/delivery/ws"
	"fuel-sense/internal/events"
	"fuel-sense/internal/logger"
	"fuel-sense/internal/middleware"
	agentUC "fuel-sense/internal/usecase/agent"
	cargoUC "fuel-sense/internal/usecase/cargo"
	dashboardUC "fuel-sense/internal/usecase/dashboard"
	notificationUC "fuel-sense/internal/usecase/notification"
	planUC "fuel-sense/internal/usecase/plan"
	userUC "fuel-sense/internal/usecase/user"
	vesselUC "fuel-sense/internal/usecase/vessel"

	"github.com/gin-gonic/gin"
)

// Deps carries the wired services the router exposes over HTTP. The
// services are built in main because the simulator and telemetry
// ingestion share them.
type Deps struct {
	Users         *userUC.Service
	Cargoes       *cargoUC.Service
	Plans         *planUC.Service
	Vessels       *vesselUC.Service
	Notifications *notificationUC.Service
	Agents        *agentUC.Service
	Dashboard     *dashboardUC.Service
	Bus           *events.Bus

	// Health reports readiness of the session store. Nil means the
	// in-memory store is in use and the service is always healthy.
	Health func() error
}

func SetupRoutes(cfg *config.Config, deps *Deps) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security headers, CORS, request size limit, general rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if deps.Health != nil {
			if err := deps.Health(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unhealthy",
					"message": "Session store connection failed",
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	authHandler := handler.NewAuthHandler(deps.Users)
	cargoHandler := handler.NewCargoHandler(deps.Cargoes, deps.Agents)
	planHandler := handler.NewPlanHandler(deps.Plans)
	vesselHandler := handler.NewVesselHandler(deps.Vessels)
	notificationHandler := handler.NewNotificationHandler(deps.Notifications)
	agentHandler := handler.NewAgentHandler(deps.Agents)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard)
	wsHandler := ws.NewHandler(deps.Bus)

	v1 := router.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			authHandler.RegisterProtectedRoutes(protected)
			cargoHandler.RegisterRoutes(protected)
			planHandler.RegisterRoutes(protected)
			vesselHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
			agentHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
			wsHandler.RegisterRoutes(protected)

			// Charterer routes
			charterer := protected.Group("")
			charterer.Use(middleware.RoleMiddleware("charterer", "admin"))
			{
				cargoHandler.RegisterChartererRoutes(charterer)
			}

			// Operator routes
			operator := protected.Group("")
			operator.Use(middleware.RoleMiddleware("operator", "admin"))
			{
				planHandler.RegisterOperatorRoutes(operator)
			}

			// Vessel crew routes
			vessel := protected.Group("")
			vessel.Use(middleware.RoleMiddleware("vessel", "vessel_manager", "admin"))
			{
				vesselHandler.RegisterVesselRoutes(vessel)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}
