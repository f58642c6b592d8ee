package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/ecstazane/zane-crud2/domain/model"
	"github.com/ecstazane/zane-crud2/domain/repository"
	"github.com/ecstazane/zane-crud2/domain/schema"
	"github.com/ecstazane/zane-crud2/infrastructure/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRecords struct {
	records map[string]*model.Record
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{records: make(map[string]*model.Record)}
}

func (f *fakeRecords) Create(_ context.Context, record *model.Record) error {
	clone := *record
	f.records[record.ID] = &clone
	return nil
}

func (f *fakeRecords) GetByID(_ context.Context, id string, includeArchived bool) (*model.Record, error) {
	record, ok := f.records[id]
	if !ok || (!includeArchived && record.IsDeleted) {
		return nil, repository.ErrRecordNotFound
	}
	clone := *record
	return &clone, nil
}

func (f *fakeRecords) List(_ context.Context, archived bool) ([]model.Record, error) {
	var out []model.Record
	for _, record := range f.records {
		if record.IsDeleted == archived {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (f *fakeRecords) Replace(_ context.Context, id string, fields model.JSONMap, at time.Time) (int64, error) {
	record, ok := f.records[id]
	if !ok {
		return 0, nil
	}
	record.Fields = fields
	record.UpdatedAt = at
	return 1, nil
}

func (f *fakeRecords) Archive(_ context.Context, id string, at time.Time) (int64, error) {
	record, ok := f.records[id]
	if !ok {
		return 0, nil
	}
	f.archive(record, at)
	return 1, nil
}

func (f *fakeRecords) ArchiveBatch(_ context.Context, ids []string, at time.Time) (int64, error) {
	var count int64
	for _, id := range ids {
		if record, ok := f.records[id]; ok && !record.IsDeleted {
			f.archive(record, at)
			count++
		}
	}
	return count, nil
}

func (f *fakeRecords) ArchiveAll(_ context.Context, at time.Time) (int64, error) {
	var count int64
	for _, record := range f.records {
		if !record.IsDeleted {
			f.archive(record, at)
			count++
		}
	}
	return count, nil
}

func (f *fakeRecords) Restore(_ context.Context, id string, at time.Time) (int64, error) {
	record, ok := f.records[id]
	if !ok {
		return 0, nil
	}
	f.restore(record, at)
	return 1, nil
}

func (f *fakeRecords) RestoreBatch(_ context.Context, ids []string, at time.Time) (int64, error) {
	var count int64
	for _, id := range ids {
		if record, ok := f.records[id]; ok && record.IsDeleted {
			f.restore(record, at)
			count++
		}
	}
	return count, nil
}

func (f *fakeRecords) RestoreAll(_ context.Context, at time.Time) (int64, error) {
	var count int64
	for _, record := range f.records {
		if record.IsDeleted {
			f.restore(record, at)
			count++
		}
	}
	return count, nil
}

func (f *fakeRecords) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := f.records[id]; !ok {
		return 0, nil
	}
	delete(f.records, id)
	return 1, nil
}

func (f *fakeRecords) DeleteBatch(_ context.Context, ids []string) (int64, error) {
	var count int64
	for _, id := range ids {
		if _, ok := f.records[id]; ok {
			delete(f.records, id)
			count++
		}
	}
	return count, nil
}

func (f *fakeRecords) DeleteArchived(_ context.Context) (int64, error) {
	var count int64
	for id, record := range f.records {
		if record.IsDeleted {
			delete(f.records, id)
			count++
		}
	}
	return count, nil
}

func (f *fakeRecords) archive(record *model.Record, at time.Time) {
	record.IsDeleted = true
	deletedAt := at
	record.DeletedAt = &deletedAt
	record.UpdatedAt = at
}

func (f *fakeRecords) restore(record *model.Record, at time.Time) {
	record.IsDeleted = false
	record.DeletedAt = nil
	record.UpdatedAt = at
}

type fakeAuditLogs struct {
	entries []model.AuditLog
	fail    bool
}

func (f *fakeAuditLogs) Create(_ context.Context, entry *model.AuditLog) error {
	if f.fail {
		return errors.New("audit store unavailable")
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAuditLogs) List(_ context.Context, limit int) ([]model.AuditLog, error) {
	if limit > len(f.entries) {
		limit = len(f.entries)
	}
	return f.entries[:limit], nil
}

func (f *fakeAuditLogs) DeleteByIDs(_ context.Context, ids []string) (int64, error) {
	return 0, nil
}

func newTestUseCase(t *testing.T) (LifecycleUseCase, *fakeRecords, *fakeAuditLogs) {
	t.Helper()

	records := newFakeRecords()
	auditLogs := &fakeAuditLogs{}
	resolver := NewResolver(schema.Default(), func(string) repository.RecordRepository {
		return records
	})
	uc := NewLifecycleUseCase(resolver, auditLogs, &logger.Logger{Log: zap.NewNop()})
	return uc, records, auditLogs
}

func carPayload() map[string]any {
	return map[string]any{
		"brand": "Toyota",
		"model": "Corolla",
		"year":  float64(2021),
		"price": float64(1200000),
	}
}

func TestCreateAppliesDefaultsAndAudits(t *testing.T) {
	uc, records, auditLogs := newTestUseCase(t)

	record, err := uc.Create(context.Background(), "Car", carPayload())
	require.NoError(t, err)
	require.NotEmpty(t, record.ID)

	assert.Equal(t, true, record.Fields["inStock"])
	assert.False(t, record.IsDeleted)
	assert.Nil(t, record.DeletedAt)
	assert.Len(t, records.records, 1)

	require.Len(t, auditLogs.entries, 1)
	entry := auditLogs.entries[0]
	assert.Equal(t, model.ActionCreate, entry.Action)
	assert.Equal(t, "Car", entry.Entity)
	assert.Equal(t, record.ID, entry.EntityID)
	assert.Equal(t, model.SystemActor, entry.PerformedBy)
	assert.Equal(t, "Toyota", entry.Changes["brand"])
}

func TestCreateValidationFailureWritesNothing(t *testing.T) {
	uc, records, auditLogs := newTestUseCase(t)

	payload := carPayload()
	payload["year"] = float64(1850)

	_, err := uc.Create(context.Background(), "Car", payload)

	var validationErr *schema.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "year", validationErr.Field)
	assert.Empty(t, records.records)
	assert.Empty(t, auditLogs.entries)
}

func TestUnknownModel(t *testing.T) {
	uc, _, auditLogs := newTestUseCase(t)

	_, err := uc.Create(context.Background(), "Spaceship", carPayload())
	assert.ErrorIs(t, err, repository.ErrUnknownModel)

	_, err = uc.ListActive(context.Background(), "Spaceship")
	assert.ErrorIs(t, err, repository.ErrUnknownModel)

	assert.Empty(t, auditLogs.entries)
}

func TestUpdateRecordsBeforeAndAfter(t *testing.T) {
	uc, _, auditLogs := newTestUseCase(t)

	created, err := uc.Create(context.Background(), "Car", carPayload())
	require.NoError(t, err)

	payload := carPayload()
	payload["price"] = float64(1100000)
	updated, err := uc.Update(context.Background(), "Car", created.ID, payload)
	require.NoError(t, err)
	assert.Equal(t, float64(1100000), updated.Fields["price"])

	require.Len(t, auditLogs.entries, 2)
	entry := auditLogs.entries[1]
	assert.Equal(t, model.ActionUpdate, entry.Action)
	assert.Equal(t, created.ID, entry.EntityID)

	before, ok := entry.Changes["before"].(model.JSONMap)
	require.True(t, ok)
	assert.Equal(t, float64(1200000), before["price"])
	after, ok := entry.Changes["after"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1100000), after["price"])
}

func TestUpdateWorksOnArchivedRecord(t *testing.T) {
	uc, records, _ := newTestUseCase(t)

	created, err := uc.Create(context.Background(), "Car", carPayload())
	require.NoError(t, err)
	require.NoError(t, uc.Archive(context.Background(), "Car", created.ID))

	payload := carPayload()
	payload["brand"] = "Honda"
	_, err = uc.Update(context.Background(), "Car", created.ID, payload)
	require.NoError(t, err)

	assert.Equal(t, "Honda", records.records[created.ID].Fields["brand"])
	assert.True(t, records.records[created.ID].IsDeleted)
}

func TestArchiveUnknownID(t *testing.T) {
	uc, _, auditLogs := newTestUseCase(t)

	err := uc.Archive(context.Background(), "Car", "missing")
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
	assert.Empty(t, auditLogs.entries)
}

func TestArchiveBatchSkipsAlreadyArchived(t *testing.T) {
	uc, _, auditLogs := newTestUseCase(t)

	first, err := uc.Create(context.Background(), "Car", carPayload())
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), "Car", carPayload())
	require.NoError(t, err)
	require.NoError(t, uc.Archive(context.Background(), "Car", first.ID))

	count, err := uc.ArchiveBatch(context.Background(), "Car", []string{first.ID, second.ID, "missing"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	entry := auditLogs.entries[len(auditLogs.entries)-1]
	assert.Equal(t, model.ActionSoftDelete, entry.Action)
	assert.Equal(t, "BATCH_SOFT_DELETE", entry.Changes["action"])
	assert.Equal(t, int64(1), entry.Changes["count"])
	assert.NotEqual(t, first.ID, entry.EntityID)
	assert.NotEqual(t, second.ID, entry.EntityID)
}

func TestRestoreReturnsActiveRecord(t *testing.T) {
	uc, _, auditLogs := newTestUseCase(t)

	created, err := uc.Create(context.Background(), "Car", carPayload())
	require.NoError(t, err)
	require.NoError(t, uc.Archive(context.Background(), "Car", created.ID))

	restored, err := uc.Restore(context.Background(), "Car", created.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)
	assert.Nil(t, restored.DeletedAt)

	entry := auditLogs.entries[len(auditLogs.entries)-1]
	assert.Equal(t, model.ActionRestore, entry.Action)
	assert.Contains(t, entry.Changes, "restoredAt")
}

func TestDeleteWritesPermanentMarker(t *testing.T) {
	uc, records, auditLogs := newTestUseCase(t)

	created, err := uc.Create(context.Background(), "Car", carPayload())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), "Car", created.ID))
	assert.Empty(t, records.records)

	entry := auditLogs.entries[len(auditLogs.entries)-1]
	assert.Equal(t, model.ActionDelete, entry.Action)
	assert.Equal(t, true, entry.Changes["permanentlyDeleted"])
}

func TestDeleteArchivedOnlyPurgesArchived(t *testing.T) {
	uc, records, auditLogs := newTestUseCase(t)

	active, err := uc.Create(context.Background(), "Car", carPayload())
	require.NoError(t, err)
	archived, err := uc.Create(context.Background(), "Car", carPayload())
	require.NoError(t, err)
	require.NoError(t, uc.Archive(context.Background(), "Car", archived.ID))

	count, err := uc.DeleteArchived(context.Background(), "Car")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, stillThere := records.records[active.ID]
	assert.True(t, stillThere)

	entry := auditLogs.entries[len(auditLogs.entries)-1]
	assert.Equal(t, "DELETE_ALL_ARCHIVED", entry.Changes["action"])
}

func TestAuditFailureDoesNotFailMutation(t *testing.T) {
	uc, records, auditLogs := newTestUseCase(t)
	auditLogs.fail = true

	record, err := uc.Create(context.Background(), "Car", carPayload())
	require.NoError(t, err)
	assert.Contains(t, records.records, record.ID)
	assert.Empty(t, auditLogs.entries)
}

func TestEveryMutationWritesExactlyOneEntry(t *testing.T) {
	uc, _, auditLogs := newTestUseCase(t)

	created, err := uc.Create(context.Background(), "Car", carPayload())
	require.NoError(t, err)
	require.Len(t, auditLogs.entries, 1)

	_, err = uc.Update(context.Background(), "Car", created.ID, carPayload())
	require.NoError(t, err)
	require.Len(t, auditLogs.entries, 2)

	require.NoError(t, uc.Archive(context.Background(), "Car", created.ID))
	require.Len(t, auditLogs.entries, 3)

	_, err = uc.Restore(context.Background(), "Car", created.ID)
	require.NoError(t, err)
	require.Len(t, auditLogs.entries, 4)

	require.NoError(t, uc.Delete(context.Background(), "Car", created.ID))
	require.Len(t, auditLogs.entries, 5)
}
