package repository

import (
	"context"

	"github.com/ecstazane/zane-crud2/domain/model"
)

// AuditLogRepository is append-only from the lifecycle engine's point of
// view; DeleteByIDs exists only for the administrative purge endpoint and is
// independent of any record's lifecycle.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *model.AuditLog) error
	List(ctx context.Context, limit int) ([]model.AuditLog, error)
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}
