package audit

import (
	"context"

	"github.com/ecstazane/zane-crud2/domain/model"
	"github.com/ecstazane/zane-crud2/domain/repository"
	"github.com/ecstazane/zane-crud2/infrastructure/logger"
)

// listLimit caps the trail view at the most recent entries.
const listLimit = 100

// AuditUseCase reads the mutation trail and prunes selected entries. Pruning
// an entry does not touch the record the entry described.
type AuditUseCase interface {
	List(ctx context.Context) ([]model.AuditLog, error)
	BatchDelete(ctx context.Context, ids []string) (int64, error)
}

type auditUseCase struct {
	repository repository.AuditLogRepository
	logger     *logger.Logger
}

func NewAuditUseCase(repository repository.AuditLogRepository, logger *logger.Logger) AuditUseCase {
	return &auditUseCase{
		repository: repository,
		logger:     logger,
	}
}

func (uc *auditUseCase) List(ctx context.Context) ([]model.AuditLog, error) {
	return uc.repository.List(ctx, listLimit)
}

func (uc *auditUseCase) BatchDelete(ctx context.Context, ids []string) (int64, error) {
	return uc.repository.DeleteByIDs(ctx, ids)
}
