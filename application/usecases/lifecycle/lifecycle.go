package lifecycle

import (
	"context"
	"time"

	"github.com/ecstazane/zane-crud2/domain/model"
	"github.com/ecstazane/zane-crud2/domain/repository"
	"github.com/ecstazane/zane-crud2/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LifecycleUseCase drives records through their lifecycle: Active on create,
// Archived on soft delete, back to Active on restore, gone on permanent
// delete. Every successful mutation appends exactly one audit entry; batch
// operations append a single aggregate entry for the whole set.
type LifecycleUseCase interface {
	Create(ctx context.Context, modelName string, payload map[string]any) (*model.Record, error)
	GetByID(ctx context.Context, modelName, id string) (*model.Record, error)
	ListActive(ctx context.Context, modelName string) ([]model.Record, error)
	ListArchived(ctx context.Context, modelName string) ([]model.Record, error)
	Update(ctx context.Context, modelName, id string, payload map[string]any) (*model.Record, error)

	Archive(ctx context.Context, modelName, id string) error
	ArchiveBatch(ctx context.Context, modelName string, ids []string) (int64, error)
	ArchiveAll(ctx context.Context, modelName string) (int64, error)

	Restore(ctx context.Context, modelName, id string) (*model.Record, error)
	RestoreBatch(ctx context.Context, modelName string, ids []string) (int64, error)
	RestoreAll(ctx context.Context, modelName string) (int64, error)

	Delete(ctx context.Context, modelName, id string) error
	DeleteBatch(ctx context.Context, modelName string, ids []string) (int64, error)
	DeleteArchived(ctx context.Context, modelName string) (int64, error)
}

type lifecycleUseCase struct {
	resolver  *Resolver
	auditLogs repository.AuditLogRepository
	logger    *logger.Logger
}

func NewLifecycleUseCase(
	resolver *Resolver,
	auditLogs repository.AuditLogRepository,
	logger *logger.Logger,
) LifecycleUseCase {
	return &lifecycleUseCase{
		resolver:  resolver,
		auditLogs: auditLogs,
		logger:    logger,
	}
}

func (uc *lifecycleUseCase) Create(ctx context.Context, modelName string, payload map[string]any) (*model.Record, error) {
	store, err := uc.resolver.Resolve(modelName)
	if err != nil {
		return nil, err
	}

	fields, err := store.Schema.Validate(payload, true)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &model.Record{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Fields:    fields,
	}
	if err := store.Records.Create(ctx, record); err != nil {
		return nil, err
	}

	uc.audit(ctx, store.Name, record.ID, model.ActionCreate, model.JSONMap(payload))
	return record, nil
}

func (uc *lifecycleUseCase) GetByID(ctx context.Context, modelName, id string) (*model.Record, error) {
	store, err := uc.resolver.Resolve(modelName)
	if err != nil {
		return nil, err
	}
	return store.Records.GetByID(ctx, id, false)
}

func (uc *lifecycleUseCase) ListActive(ctx context.Context, modelName string) ([]model.Record, error) {
	store, err := uc.resolver.Resolve(modelName)
	if err != nil {
		return nil, err
	}
	return store.Records.List(ctx, false)
}

func (uc *lifecycleUseCase) ListArchived(ctx context.Context, modelName string) ([]model.Record, error) {
	store, err := uc.resolver.Resolve(modelName)
	if err != nil {
		return nil, err
	}
	return store.Records.List(ctx, true)
}

// Update replaces the declared fields wholesale. It works on archived records
// too, so an archived item can be fixed up before restoring.
func (uc *lifecycleUseCase) Update(ctx context.Context, modelName, id string, payload map[string]any) (*model.Record, error) {
	store, err := uc.resolver.Resolve(modelName)
	if err != nil {
		return nil, err
	}

	before, err := store.Records.GetByID(ctx, id, true)
	if err != nil {
		return nil, err
	}

	fields, err := store.Schema.Validate(payload, false)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	affected, err := store.Records.Replace(ctx, id, fields, now)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, repository.ErrRecordNotFound
	}

	uc.audit(ctx, store.Name, id, model.ActionUpdate, model.JSONMap{
		"before": before.Document(),
		"after":  payload,
	})

	updated := *before
	updated.Fields = fields
	updated.UpdatedAt = now
	return &updated, nil
}

func (uc *lifecycleUseCase) Archive(ctx context.Context, modelName, id string) error {
	store, err := uc.resolver.Resolve(modelName)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	affected, err := store.Records.Archive(ctx, id, now)
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrRecordNotFound
	}

	uc.audit(ctx, store.Name, id, model.ActionSoftDelete, model.JSONMap{
		"deletedAt": now,
	})
	return nil
}

func (uc *lifecycleUseCase) ArchiveBatch(ctx context.Context, modelName string, ids []string) (int64, error) {
	store, err := uc.resolver.Resolve(modelName)
	if err != nil {
		return 0, err
	}

	count, err := store.Records.ArchiveBatch(ctx, ids, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	uc.audit(ctx, store.Name, uuid.NewString(), model.ActionSoftDelete, model.JSONMap{
		"action": "BATCH_SOFT_DELETE",
		"count":  count,
		"ids":    ids,
	})
	return count, nil
}

func (uc *lifecycleUseCase) ArchiveAll(ctx context.Context, modelName string) (int64, error) {
	store, err := uc.resolver.Resolve(modelName)
	if err != nil {
		return 0, err
	}

	count, err := store.Records.ArchiveAll(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	uc.audit(ctx, store.Name, uuid.NewString(), model.ActionSoftDelete, model.JSONMap{
		"action": "SOFT_DELETE_ALL",
		"count":  count,
	})
	return count, nil
}

func (uc *lifecycleUseCase) Restore(ctx context.Context, modelName, id string) (*model.Record, error) {
	store, err := uc.resolver.Resolve(modelName)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	affected, err := store.Records.Restore(ctx, id, now)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, repository.ErrRecordNotFound
	}

	uc.audit(ctx, store.Name, id, model.ActionRestore, model.JSONMap{
		"restoredAt": now,
	})

	return store.Records.GetByID(ctx, id, false)
}

func (uc *lifecycleUseCase) RestoreBatch(ctx context.Context, modelName string, ids []string) (int64, error) {
	store, err := uc.resolver.Resolve(modelName)
	if err != nil {
		return 0, err
	}

	count, err := store.Records.RestoreBatch(ctx, ids, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	uc.audit(ctx, store.Name, uuid.NewString(), model.ActionRestore, model.JSONMap{
		"action": "BATCH_RESTORE",
		"count":  count,
		"ids":    ids,
	})
	return count, nil
}

func (uc *lifecycleUseCase) RestoreAll(ctx context.Context, modelName string) (int64, error) {
	store, err := uc.resolver.Resolve(modelName)
	if err != nil {
		return 0, err
	}

	count, err := store.Records.RestoreAll(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	uc.audit(ctx, store.Name, uuid.NewString(), model.ActionRestore, model.JSONMap{
		"action": "RESTORE_ALL",
		"count":  count,
	})
	return count, nil
}

func (uc *lifecycleUseCase) Delete(ctx context.Context, modelName, id string) error {
	store, err := uc.resolver.Resolve(modelName)
	if err != nil {
		return err
	}

	affected, err := store.Records.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrRecordNotFound
	}

	uc.audit(ctx, store.Name, id, model.ActionDelete, model.JSONMap{
		"permanentlyDeleted": true,
	})
	return nil
}

func (uc *lifecycleUseCase) DeleteBatch(ctx context.Context, modelName string, ids []string) (int64, error) {
	store, err := uc.resolver.Resolve(modelName)
	if err != nil {
		return 0, err
	}

	count, err := store.Records.DeleteBatch(ctx, ids)
	if err != nil {
		return 0, err
	}

	uc.audit(ctx, store.Name, uuid.NewString(), model.ActionDelete, model.JSONMap{
		"action": "BATCH_PERMANENT_DELETE",
		"count":  count,
		"ids":    ids,
	})
	return count, nil
}

func (uc *lifecycleUseCase) DeleteArchived(ctx context.Context, modelName string) (int64, error) {
	store, err := uc.resolver.Resolve(modelName)
	if err != nil {
		return 0, err
	}

	count, err := store.Records.DeleteArchived(ctx)
	if err != nil {
		return 0, err
	}

	uc.audit(ctx, store.Name, uuid.NewString(), model.ActionDelete, model.JSONMap{
		"action": "DELETE_ALL_ARCHIVED",
		"count":  count,
	})
	return count, nil
}

// audit appends the single entry for an already-committed mutation. A failed
// append must not undo or fail the mutation itself, so the error is only
// logged.
func (uc *lifecycleUseCase) audit(ctx context.Context, entity, entityID string, action model.AuditAction, changes model.JSONMap) {
	entry := &model.AuditLog{
		ID:          uuid.NewString(),
		Entity:      entity,
		EntityID:    entityID,
		Action:      action,
		Changes:     changes,
		Timestamp:   time.Now().UTC(),
		PerformedBy: model.SystemActor,
	}
	if err := uc.auditLogs.Create(ctx, entry); err != nil {
		uc.logger.Error("failed to append audit entry",
			zap.String("entity", entity),
			zap.String("action", string(action)),
			zap.Error(err))
	}
}
