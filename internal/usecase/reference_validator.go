package usecase

import (
	"fmt"

	"pharmacy-records/internal/domain/entity"
	"pharmacy-records/internal/domain/repository"
	"pharmacy-records/pkg/apperror"

	"gorm.io/gorm"
)

// Reference names a row a write depends on.
type Reference struct {
	Kind entity.EntityKind
	Key  interface{}
}

func Ref(kind entity.EntityKind, key interface{}) Reference {
	return Reference{Kind: kind, Key: key}
}

// ReferenceValidator checks that every parent a write names exists before the
// write happens, so the caller learns which reference was missing instead of
// receiving a bare foreign key failure.
type ReferenceValidator struct {
	refRepo repository.ReferenceRepository
}

func NewReferenceValidator(refRepo repository.ReferenceRepository) *ReferenceValidator {
	return &ReferenceValidator{refRepo: refRepo}
}

func (v *ReferenceValidator) Exists(tx *gorm.DB, kind entity.EntityKind, key interface{}) (bool, error) {
	return v.refRepo.Exists(tx, kind, key)
}

// Require fails with ReferenceNotFound on the first missing reference, in argument order.
func (v *ReferenceValidator) Require(tx *gorm.DB, refs ...Reference) error {
	for _, ref := range refs {
		ok, err := v.refRepo.Exists(tx, ref.Kind, ref.Key)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.ReferenceNotFound(ref.Kind.String(), fmt.Sprint(ref.Key))
		}
	}
	return nil
}
