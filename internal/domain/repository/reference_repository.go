package repository

import (
	"pharmacy-records/internal/domain/entity"

	"gorm.io/gorm"
)

// ReferenceRepository answers existence questions for any referenceable entity kind.
type ReferenceRepository interface {
	// Exists looks the key up under a shared row lock so the row cannot be
	// deleted before the surrounding transaction commits.
	Exists(db *gorm.DB, kind entity.EntityKind, key interface{}) (bool, error)
}
