package dependency

import (
	"fmt"

	auditUseCase "github.com/ecstazane/zane-crud2/application/usecases/audit"
	"github.com/ecstazane/zane-crud2/application/usecases/lifecycle"
	"github.com/ecstazane/zane-crud2/domain/repository"
	"github.com/ecstazane/zane-crud2/domain/schema"
	"github.com/ecstazane/zane-crud2/infrastructure/cache"
	"github.com/ecstazane/zane-crud2/infrastructure/config"
	"github.com/ecstazane/zane-crud2/infrastructure/logger"
	"github.com/ecstazane/zane-crud2/infrastructure/metrics"
	auditCtrl "github.com/ecstazane/zane-crud2/presentation/controllers/audit"
	"github.com/ecstazane/zane-crud2/presentation/controllers/models"
	"github.com/ecstazane/zane-crud2/presentation/controllers/records"
	"gorm.io/gorm"
)

type Container struct {
	Config *config.Config
	Logger *logger.Logger

	MetricsManager metrics.Manager

	DB       *gorm.DB
	Registry *schema.Registry

	AuditLogRepo repository.AuditLogRepository
	Resolver     *lifecycle.Resolver

	LifecycleUC lifecycle.LifecycleUseCase
	AuditUC     auditUseCase.AuditUseCase

	RecordsController records.RecordsController
	AuditController   auditCtrl.AuditController
	ModelsController  models.ModelsController
}

func NewContainer() (*Container, error) {
	c := &Container{}

	c.Config = config.GetConfig()

	var err error
	if c.Config.IsProduction() {
		c.Logger, err = logger.NewProductionLogger(c.Config.Logger.Level)
	} else {
		c.Logger, err = logger.NewDevelopmentLogger()
	}
	if err != nil {
		return nil, fmt.Errorf("error initializing logger: %w", err)
	}

	c.Logger.Info("Initializing API dependencies")

	if err := cache.InitRedis(c.Config); err != nil {
		return nil, fmt.Errorf("error initializing cache: %w", err)
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, fmt.Errorf("error initializing infrastructure: %w", err)
	}

	c.initRepositories()

	c.initUseCases()

	c.initControllers()

	c.Logger.Info("All dependencies initialized successfully")

	return c, nil
}
