package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ecstazane/zane-crud2/domain/model"
	"github.com/ecstazane/zane-crud2/domain/repository"
	"github.com/ecstazane/zane-crud2/domain/schema"
	"github.com/ecstazane/zane-crud2/infrastructure/persistence/migration"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// The in-memory database lives per connection.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migration.Up(db, schema.Default()))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

func newCarRepository(t *testing.T) repository.RecordRepository {
	t.Helper()
	return NewRecordRepository(newTestDB(t), "Car", zap.NewNop())
}

func insertRecord(t *testing.T, repo repository.RecordRepository, createdAt time.Time, fields model.JSONMap) *model.Record {
	t.Helper()

	record := &model.Record{
		ID:        uuid.NewString(),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
		Fields:    fields,
	}
	require.NoError(t, repo.Create(context.Background(), record))
	return record
}

func TestCreateAndGetByID(t *testing.T) {
	repo := newCarRepository(t)
	ctx := context.Background()

	created := insertRecord(t, repo, time.Now().UTC(), model.JSONMap{
		"brand": "Toyota",
		"year":  float64(2021),
	})

	found, err := repo.GetByID(ctx, created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Toyota", found.Fields["brand"])
	assert.Equal(t, float64(2021), found.Fields["year"])
	assert.False(t, found.IsDeleted)
}

func TestGetByIDUnknown(t *testing.T) {
	repo := newCarRepository(t)

	_, err := repo.GetByID(context.Background(), "missing", false)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestGetByIDArchivedVisibility(t *testing.T) {
	repo := newCarRepository(t)
	ctx := context.Background()

	created := insertRecord(t, repo, time.Now().UTC(), model.JSONMap{"brand": "Toyota"})

	affected, err := repo.Archive(ctx, created.ID, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	_, err = repo.GetByID(ctx, created.ID, false)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)

	found, err := repo.GetByID(ctx, created.ID, true)
	require.NoError(t, err)
	assert.True(t, found.IsDeleted)
	require.NotNil(t, found.DeletedAt)
}

func TestListOrdering(t *testing.T) {
	repo := newCarRepository(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	oldest := insertRecord(t, repo, base.Add(-2*time.Hour), model.JSONMap{"brand": "A"})
	middle := insertRecord(t, repo, base.Add(-time.Hour), model.JSONMap{"brand": "B"})
	newest := insertRecord(t, repo, base, model.JSONMap{"brand": "C"})

	active, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 3)
	assert.Equal(t, newest.ID, active[0].ID)
	assert.Equal(t, middle.ID, active[1].ID)
	assert.Equal(t, oldest.ID, active[2].ID)

	// Archive oldest last so archived ordering differs from created ordering.
	_, err = repo.Archive(ctx, middle.ID, base.Add(time.Minute))
	require.NoError(t, err)
	_, err = repo.Archive(ctx, oldest.ID, base.Add(2*time.Minute))
	require.NoError(t, err)

	archived, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, archived, 2)
	assert.Equal(t, oldest.ID, archived[0].ID)
	assert.Equal(t, middle.ID, archived[1].ID)

	active, err = repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, newest.ID, active[0].ID)
}

func TestReplaceSwapsFields(t *testing.T) {
	repo := newCarRepository(t)
	ctx := context.Background()

	created := insertRecord(t, repo, time.Now().UTC(), model.JSONMap{"brand": "Toyota", "year": float64(2021)})

	at := time.Now().UTC()
	affected, err := repo.Replace(ctx, created.ID, model.JSONMap{"brand": "Honda"}, at)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	found, err := repo.GetByID(ctx, created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "Honda", found.Fields["brand"])
	_, present := found.Fields["year"]
	assert.False(t, present)

	affected, err = repo.Replace(ctx, "missing", model.JSONMap{}, at)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestArchiveAndRestoreRoundTrip(t *testing.T) {
	repo := newCarRepository(t)
	ctx := context.Background()

	created := insertRecord(t, repo, time.Now().UTC(), model.JSONMap{"brand": "Toyota"})

	affected, err := repo.Archive(ctx, created.ID, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	affected, err = repo.Restore(ctx, created.ID, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	found, err := repo.GetByID(ctx, created.ID, false)
	require.NoError(t, err)
	assert.False(t, found.IsDeleted)
	assert.Nil(t, found.DeletedAt)
}

func TestArchiveBatchFiltersPreState(t *testing.T) {
	repo := newCarRepository(t)
	ctx := context.Background()

	first := insertRecord(t, repo, time.Now().UTC(), model.JSONMap{"brand": "A"})
	second := insertRecord(t, repo, time.Now().UTC(), model.JSONMap{"brand": "B"})

	_, err := repo.Archive(ctx, first.ID, time.Now().UTC())
	require.NoError(t, err)

	count, err := repo.ArchiveBatch(ctx, []string{first.ID, second.ID, "missing"}, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRestoreBatchFiltersPreState(t *testing.T) {
	repo := newCarRepository(t)
	ctx := context.Background()

	first := insertRecord(t, repo, time.Now().UTC(), model.JSONMap{"brand": "A"})
	second := insertRecord(t, repo, time.Now().UTC(), model.JSONMap{"brand": "B"})

	_, err := repo.Archive(ctx, first.ID, time.Now().UTC())
	require.NoError(t, err)

	count, err := repo.RestoreBatch(ctx, []string{first.ID, second.ID}, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestArchiveAllAndRestoreAll(t *testing.T) {
	repo := newCarRepository(t)
	ctx := context.Background()

	insertRecord(t, repo, time.Now().UTC(), model.JSONMap{"brand": "A"})
	insertRecord(t, repo, time.Now().UTC(), model.JSONMap{"brand": "B"})

	count, err := repo.ArchiveAll(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	active, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	count, err = repo.RestoreAll(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	active, err = repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestDeleteOperations(t *testing.T) {
	repo := newCarRepository(t)
	ctx := context.Background()

	first := insertRecord(t, repo, time.Now().UTC(), model.JSONMap{"brand": "A"})
	second := insertRecord(t, repo, time.Now().UTC(), model.JSONMap{"brand": "B"})
	third := insertRecord(t, repo, time.Now().UTC(), model.JSONMap{"brand": "C"})

	affected, err := repo.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	count, err := repo.DeleteBatch(ctx, []string{second.ID, "missing"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = repo.Archive(ctx, third.ID, time.Now().UTC())
	require.NoError(t, err)

	count, err = repo.DeleteArchived(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	remaining, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestModelsUseSeparateTables(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	cars := NewRecordRepository(db, "Car", zap.NewNop())
	movies := NewRecordRepository(db, "Movie", zap.NewNop())

	car := &model.Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
		Fields:    model.JSONMap{"brand": "Toyota"},
	}
	require.NoError(t, cars.Create(ctx, car))

	_, err := movies.GetByID(ctx, car.ID, true)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)

	movieList, err := movies.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, movieList)
}
