package model

import (
	"time"
)

type AuditAction string

const (
	ActionCreate     AuditAction = "CREATE"
	ActionUpdate     AuditAction = "UPDATE"
	ActionSoftDelete AuditAction = "SOFT_DELETE"
	ActionRestore    AuditAction = "RESTORE"
	ActionDelete     AuditAction = "DELETE"
)

// SystemActor stamps every audit entry while the console runs without
// authentication.
const SystemActor = "System"

// AuditLog is one immutable entry in the mutation trail. EntityID is the
// affected record id, or a synthetic placeholder id for set-wide operations
// that have no single subject (the affected ids then live inside Changes).
type AuditLog struct {
	ID        string      `gorm:"type:VARCHAR(36);primaryKey" json:"id"`
	Entity    string      `gorm:"type:VARCHAR(64);not null;index" json:"entity"`
	EntityID  string      `gorm:"type:VARCHAR(36);not null;index" json:"entityId"`
	Action    AuditAction `gorm:"type:VARCHAR(16);not null;index" json:"action"`
	Changes   JSONMap     `gorm:"type:JSONB" json:"changes"`
	Timestamp time.Time   `gorm:"not null;index" json:"timestamp"`

	PerformedBy string `gorm:"type:VARCHAR(64);not null" json:"performedBy"`
}
