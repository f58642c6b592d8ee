package model

import (
	"time"
)

// Record is one entity of a dynamic model. The declared fields live in the
// Fields document; every model table shares this shape, so no per-model Go
// type exists anywhere.
//
// Lifecycle invariant: IsDeleted == false <=> DeletedAt == nil. A record is
// either active or archived; a permanently deleted record leaves no tombstone.
type Record struct {
	ID        string     `gorm:"type:VARCHAR(36);primaryKey" json:"id"`
	CreatedAt time.Time  `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"not null" json:"updatedAt"`
	IsDeleted bool       `gorm:"not null;default:false;index" json:"isDeleted"`
	DeletedAt *time.Time `gorm:"index" json:"deletedAt"`
	Fields    JSONMap    `gorm:"type:JSONB;not null" json:"fields"`
}

// Document flattens the record into a single JSON object, declared fields
// alongside the system fields, the way the table/form UI consumes it.
func (r *Record) Document() JSONMap {
	doc := make(JSONMap, len(r.Fields)+5)
	for k, v := range r.Fields {
		doc[k] = v
	}
	doc["id"] = r.ID
	doc["createdAt"] = r.CreatedAt
	doc["updatedAt"] = r.UpdatedAt
	doc["isDeleted"] = r.IsDeleted
	doc["deletedAt"] = r.DeletedAt
	return doc
}
