package migration

import (
	"github.com/ecstazane/zane-crud2/domain/model"
	"github.com/ecstazane/zane-crud2/domain/schema"
	"github.com/ecstazane/zane-crud2/infrastructure/common"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Up creates the audit collection and one record table per registered model.
// Every model table shares the Record shape; the declared fields live in the
// JSONB document column.
func Up(db *gorm.DB, registry *schema.Registry) error {
	if err := db.AutoMigrate(&model.AuditLog{}); err != nil {
		return errors.Wrap(err, "migrating audit_logs")
	}

	for _, name := range registry.Names() {
		table := common.TableName(name)
		if err := db.Table(table).AutoMigrate(&model.Record{}); err != nil {
			return errors.Wrapf(err, "migrating %s", table)
		}
	}

	return nil
}
