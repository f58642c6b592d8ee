package dependency

import (
	auditUseCase "github.com/ecstazane/zane-crud2/application/usecases/audit"
	"github.com/ecstazane/zane-crud2/application/usecases/lifecycle"
)

func (c *Container) initUseCases() {
	c.LifecycleUC = lifecycle.NewLifecycleUseCase(c.Resolver, c.AuditLogRepo, c.Logger)
	c.AuditUC = auditUseCase.NewAuditUseCase(c.AuditLogRepo, c.Logger)

	c.Logger.Info("Use cases initialized successfully")
}
