package routes

import (
	"log/slog"

	"hr-dashboard-api/internal/handlers"
	"hr-dashboard-api/internal/logging"
	"hr-dashboard-api/internal/metrics"
	"hr-dashboard-api/internal/realtime"

	"github.com/gin-gonic/gin"
)

// Dependencies are the collaborators the router wires together. Hub, Metrics and
// Logger are optional.
type Dependencies struct {
	Handler *handlers.Handler
	Hub     *realtime.Hub
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

func SetupRoutes(deps Dependencies) *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	if deps.Logger != nil {
		ginRouter.Use(logging.RequestLogger(deps.Logger))
	}
	if deps.Metrics != nil {
		ginRouter.Use(deps.Metrics.Middleware())
	}

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoints
	ginRouter.GET("/", handlers.Health)
	ginRouter.GET("/health", handlers.Health)

	h := deps.Handler
	ginRouter.GET("/ready", h.Ready)

	// Resource routes are served at the root and under /api, where the
	// original deployment mounted them.
	registerResources(&ginRouter.RouterGroup, h)
	registerResources(ginRouter.Group("/api"), h)

	if deps.Hub != nil {
		logger := deps.Logger
		if logger == nil {
			logger = slog.Default()
		}
		ginRouter.GET("/ws", handlers.WebSocketHandler(deps.Hub, logger))
	}
	if deps.Metrics != nil {
		ginRouter.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	return ginRouter
}

func registerResources(g *gin.RouterGroup, h *handlers.Handler) {
	// Employee endpoints
	g.GET("/employees", h.ListEmployees)
	g.GET("/employees/:id", h.GetEmployee)
	g.POST("/employees", h.CreateEmployee)
	g.PUT("/employees/:id", h.UpdateEmployee)
	g.DELETE("/employees/:id", h.DeleteEmployee)

	// Task endpoints
	g.GET("/tasks", h.ListTasks)
	g.GET("/tasks/:id", h.GetTask)
	g.POST("/tasks", h.CreateTask)
	g.PUT("/tasks/:id", h.UpdateTask)
	g.DELETE("/tasks/:id", h.DeleteTask)

	g.GET("/stats", h.GetStats)
}
