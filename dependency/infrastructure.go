package dependency

import (
	"fmt"

	"github.com/ecstazane/zane-crud2/domain/schema"
	"github.com/ecstazane/zane-crud2/infrastructure/metrics"
	"github.com/ecstazane/zane-crud2/infrastructure/metrics/exporters"
	"github.com/ecstazane/zane-crud2/infrastructure/persistence/database"
	"github.com/ecstazane/zane-crud2/infrastructure/persistence/migration"
	"go.uber.org/zap"
)

const (
	serviceName    = "zane-crud2-api"
	serviceVersion = "1.0.0"
)

func (c *Container) initInfrastructure() error {
	meter := exporters.Prometheus(serviceName, serviceVersion)
	if meter == nil {
		return fmt.Errorf("failed to initialize Prometheus exporter")
	}

	c.MetricsManager = metrics.NewMetricsManager(meter, c.Logger)

	c.MetricsManager.NewGauge("app_go_routines", "Number of goroutines")
	c.MetricsManager.NewGauge("app_sys_memory_alloc", "Bytes allocated and in use")
	c.MetricsManager.NewGauge("app_sys_total_alloc", "Total bytes allocated")
	c.MetricsManager.NewGauge("app_go_numGC", "Number of completed GC cycles")
	c.MetricsManager.NewGauge("app_go_sys", "Total bytes of memory obtained from OS")

	c.MetricsManager.NewCounter("http_requests_total", "Total number of HTTP requests")
	c.MetricsManager.NewCounter("http_requests_errors_total", "Total number of HTTP requests that failed server-side")
	c.MetricsManager.NewHistogram("http_request_duration_seconds", "HTTP request duration in seconds",
		0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0)

	c.Logger.Info("Metrics initialized successfully")

	db, err := database.Connect(c.Config, c.Logger)
	if err != nil {
		return err
	}
	c.DB = db

	c.Registry = schema.Default()
	if err := migration.Up(db, c.Registry); err != nil {
		return err
	}

	c.Logger.Info("Database migrated",
		zap.Strings("models", c.Registry.Names()),
	)

	return nil
}
