package dependency

import (
	"time"

	"github.com/ecstazane/zane-crud2/infrastructure/cache"
	"github.com/ecstazane/zane-crud2/infrastructure/metrics"
	"github.com/ecstazane/zane-crud2/infrastructure/persistence/database"
	auditCtrl "github.com/ecstazane/zane-crud2/presentation/controllers/audit"
	"github.com/ecstazane/zane-crud2/presentation/controllers/models"
	"github.com/ecstazane/zane-crud2/presentation/controllers/records"
	"github.com/ecstazane/zane-crud2/presentation/middlewares"
	"github.com/ecstazane/zane-crud2/presentation/routes"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

func (c *Container) initControllers() {
	c.RecordsController = records.NewRecordsController(c.LifecycleUC)
	c.AuditController = auditCtrl.NewAuditController(c.AuditUC)
	c.ModelsController = models.NewModelsController(c.Registry)

	c.Logger.Info("Controllers initialized successfully")
}

func (c *Container) SetupRouter() *gin.Engine {
	switch c.Config.Server.RunMode {
	case "release", "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	binding.Validator = new(middlewares.DefaultValidator)

	router := gin.Default()

	router.Use(middlewares.GinLogger(c.Logger))
	router.Use(middlewares.CorsMiddleware(c.Config))
	router.Use(middlewares.MetricsMiddleware(c.MetricsManager))

	router.GET("/health", c.healthCheckHandler)

	c.registerObservabilityRoutes(router)

	c.registerAPIRoutes(router)

	c.Logger.Info("Router configured successfully")

	return router
}

func (c *Container) registerAPIRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		v1.Use(middlewares.RateLimiterMiddleware(cache.GetRedis(), c.Logger, middlewares.ModerateRateLimiterConfig()))

		strict := middlewares.RateLimiterMiddleware(cache.GetRedis(), c.Logger, middlewares.StrictRateLimiterConfig())

		routes.ModelRoutes(v1, c.ModelsController)
		routes.AuditRoutes(v1, c.AuditController, strict)
		routes.RecordRoutes(v1, c.RecordsController, strict)
	}
}

func (c *Container) healthCheckHandler(ctx *gin.Context) {
	ctx.JSON(200, gin.H{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (c *Container) registerObservabilityRoutes(router *gin.Engine) {
	metricsGroup := router.Group("/observability")
	{
		metrics.GetHandler(metricsGroup, c.MetricsManager)
	}
}

func (c *Container) Shutdown() error {
	c.Logger.Info("Shutting down dependencies...")

	cache.CloseRedis()

	if c.DB != nil {
		if err := database.Close(c.DB); err != nil {
			c.Logger.Error("failed to close database", zap.Error(err))
		}
	}

	if err := c.Logger.Log.Sync(); err != nil {
		c.Logger.Error("failed to sync logger", zap.Error(err))
	}

	c.Logger.Info("Dependencies shut down successfully")

	return nil
}
