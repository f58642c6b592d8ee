package repository

import (
	"context"

	"github.com/ecstazane/zane-crud2/domain/model"
	"github.com/ecstazane/zane-crud2/domain/repository"
	"github.com/ecstazane/zane-crud2/infrastructure/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuditLogRepository struct {
	database *gorm.DB
	logger   *logger.GormZapLogger
}

func NewAuditLogRepository(db *gorm.DB, zapLogger *zap.Logger) repository.AuditLogRepository {
	return &AuditLogRepository{
		database: db,
		logger:   logger.NewGormLogger(zapLogger),
	}
}

func (r *AuditLogRepository) Create(ctx context.Context, entry *model.AuditLog) error {
	if err := r.database.WithContext(ctx).Create(entry).Error; err != nil {
		r.logger.Error(ctx, "%s", err.Error())
		return errors.Wrap(err, "appending audit entry")
	}
	return nil
}

func (r *AuditLogRepository) List(ctx context.Context, limit int) ([]model.AuditLog, error) {
	var entries []model.AuditLog
	err := r.database.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entries).
		Error
	if err != nil {
		r.logger.Error(ctx, "%s", err.Error())
		return nil, errors.Wrap(err, "listing audit entries")
	}
	return entries, nil
}

func (r *AuditLogRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	result := r.database.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.AuditLog{})
	if result.Error != nil {
		r.logger.Error(ctx, "%s", result.Error.Error())
		return 0, errors.Wrap(result.Error, "deleting audit entries")
	}
	return result.RowsAffected, nil
}
