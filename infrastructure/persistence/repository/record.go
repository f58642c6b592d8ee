package repository

import (
	"context"
	"time"

	"github.com/ecstazane/zane-crud2/domain/model"
	"github.com/ecstazane/zane-crud2/domain/repository"
	"github.com/ecstazane/zane-crud2/infrastructure/common"
	"github.com/ecstazane/zane-crud2/infrastructure/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecordRepository persists one model's records in its own table. Built by
// NewRecordRepository — the record store factory — once per registered model
// at startup.
//
// All state transitions are single conditional statements so the database's
// row-level atomicity is the only concurrency control: a transition whose
// WHERE clause no longer matches simply reports zero rows.
type RecordRepository struct {
	database *gorm.DB
	model    string
	table    string
	logger   *logger.GormZapLogger
}

func NewRecordRepository(db *gorm.DB, modelName string, zapLogger *zap.Logger) repository.RecordRepository {
	return &RecordRepository{
		database: db,
		model:    modelName,
		table:    common.TableName(modelName),
		logger:   logger.NewGormLogger(zapLogger),
	}
}

func (r *RecordRepository) collection(ctx context.Context) *gorm.DB {
	return r.database.WithContext(ctx).Table(r.table)
}

func (r *RecordRepository) Create(ctx context.Context, record *model.Record) error {
	if err := r.collection(ctx).Create(record).Error; err != nil {
		r.logger.Error(ctx, "%s", err.Error())
		return errors.Wrapf(err, "inserting into %s", r.table)
	}
	return nil
}

func (r *RecordRepository) GetByID(ctx context.Context, id string, includeArchived bool) (*model.Record, error) {
	query := r.collection(ctx).Where("id = ?", id)
	if !includeArchived {
		query = query.Where("is_deleted = ?", false)
	}

	var record model.Record
	if err := query.Take(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}
		r.logger.Error(ctx, "%s", err.Error())
		return nil, errors.Wrapf(err, "reading %s/%s", r.table, id)
	}
	return &record, nil
}

func (r *RecordRepository) List(ctx context.Context, archived bool) ([]model.Record, error) {
	order := "created_at DESC"
	if archived {
		order = "deleted_at DESC"
	}

	var records []model.Record
	err := r.collection(ctx).
		Where("is_deleted = ?", archived).
		Order(order).
		Find(&records).
		Error
	if err != nil {
		r.logger.Error(ctx, "%s", err.Error())
		return nil, errors.Wrapf(err, "listing %s", r.table)
	}
	return records, nil
}

func (r *RecordRepository) Replace(ctx context.Context, id string, fields model.JSONMap, at time.Time) (int64, error) {
	return r.update(ctx,
		r.collection(ctx).Where("id = ?", id),
		map[string]any{
			"fields":     fields,
			"updated_at": at,
		})
}

func (r *RecordRepository) Archive(ctx context.Context, id string, at time.Time) (int64, error) {
	return r.update(ctx,
		r.collection(ctx).Where("id = ?", id),
		archiveColumns(at))
}

func (r *RecordRepository) ArchiveBatch(ctx context.Context, ids []string, at time.Time) (int64, error) {
	return r.update(ctx,
		r.collection(ctx).Where("id IN ? AND is_deleted = ?", ids, false),
		archiveColumns(at))
}

func (r *RecordRepository) ArchiveAll(ctx context.Context, at time.Time) (int64, error) {
	return r.update(ctx,
		r.collection(ctx).Where("is_deleted = ?", false),
		archiveColumns(at))
}

func (r *RecordRepository) Restore(ctx context.Context, id string, at time.Time) (int64, error) {
	return r.update(ctx,
		r.collection(ctx).Where("id = ?", id),
		restoreColumns(at))
}

func (r *RecordRepository) RestoreBatch(ctx context.Context, ids []string, at time.Time) (int64, error) {
	return r.update(ctx,
		r.collection(ctx).Where("id IN ? AND is_deleted = ?", ids, true),
		restoreColumns(at))
}

func (r *RecordRepository) RestoreAll(ctx context.Context, at time.Time) (int64, error) {
	return r.update(ctx,
		r.collection(ctx).Where("is_deleted = ?", true),
		restoreColumns(at))
}

func (r *RecordRepository) Delete(ctx context.Context, id string) (int64, error) {
	return r.remove(ctx, r.collection(ctx).Where("id = ?", id))
}

func (r *RecordRepository) DeleteBatch(ctx context.Context, ids []string) (int64, error) {
	return r.remove(ctx, r.collection(ctx).Where("id IN ?", ids))
}

func (r *RecordRepository) DeleteArchived(ctx context.Context) (int64, error) {
	return r.remove(ctx, r.collection(ctx).Where("is_deleted = ?", true))
}

func (r *RecordRepository) update(ctx context.Context, query *gorm.DB, columns map[string]any) (int64, error) {
	result := query.Updates(columns)
	if result.Error != nil {
		r.logger.Error(ctx, "%s", result.Error.Error())
		return 0, errors.Wrapf(result.Error, "updating %s", r.table)
	}
	return result.RowsAffected, nil
}

func (r *RecordRepository) remove(ctx context.Context, query *gorm.DB) (int64, error) {
	result := query.Delete(&model.Record{})
	if result.Error != nil {
		r.logger.Error(ctx, "%s", result.Error.Error())
		return 0, errors.Wrapf(result.Error, "deleting from %s", r.table)
	}
	return result.RowsAffected, nil
}

func archiveColumns(at time.Time) map[string]any {
	return map[string]any{
		"is_deleted": true,
		"deleted_at": at,
		"updated_at": at,
	}
}

func restoreColumns(at time.Time) map[string]any {
	return map[string]any{
		"is_deleted": false,
		"deleted_at": nil,
		"updated_at": at,
	}
}
