package dependency

import (
	"github.com/ecstazane/zane-crud2/application/usecases/lifecycle"
	domainRepo "github.com/ecstazane/zane-crud2/domain/repository"
	"github.com/ecstazane/zane-crud2/infrastructure/persistence/repository"
)

func (c *Container) initRepositories() {
	c.AuditLogRepo = repository.NewAuditLogRepository(c.DB, c.Logger.Log)

	c.Resolver = lifecycle.NewResolver(c.Registry, func(modelName string) domainRepo.RecordRepository {
		return repository.NewRecordRepository(c.DB, modelName, c.Logger.Log)
	})

	c.Logger.Info("Repositories initialized successfully")
}
