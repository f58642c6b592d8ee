package repository

import (
	"context"
	"time"

	"github.com/ecstazane/zane-crud2/domain/model"
)

// RecordRepository is the store for one model's records — one logical
// collection per model, produced by the record store factory.
//
// Reads take an explicit archived selector so soft-delete filtering can never
// be forgotten at a call site. Batch mutations are single conditional bulk
// statements filtered by the expected pre-state: ids already past the
// transition are skipped silently and only the modified count is reported.
// Single-record transitions are likewise single conditional updates; a zero
// count means the id did not match.
type RecordRepository interface {
	Create(ctx context.Context, record *model.Record) error
	GetByID(ctx context.Context, id string, includeArchived bool) (*model.Record, error)

	// List returns active records newest-created first, or archived records
	// most-recently-archived first.
	List(ctx context.Context, archived bool) ([]model.Record, error)

	// Replace swaps the declared field document and bumps updated_at.
	Replace(ctx context.Context, id string, fields model.JSONMap, at time.Time) (int64, error)

	Archive(ctx context.Context, id string, at time.Time) (int64, error)
	ArchiveBatch(ctx context.Context, ids []string, at time.Time) (int64, error)
	ArchiveAll(ctx context.Context, at time.Time) (int64, error)

	Restore(ctx context.Context, id string, at time.Time) (int64, error)
	RestoreBatch(ctx context.Context, ids []string, at time.Time) (int64, error)
	RestoreAll(ctx context.Context, at time.Time) (int64, error)

	Delete(ctx context.Context, id string) (int64, error)
	DeleteBatch(ctx context.Context, ids []string) (int64, error)
	DeleteArchived(ctx context.Context) (int64, error)
}
