package service

import (
	"context"

	"pharmacy-records/internal/domain/entity"
	"pharmacy-records/internal/domain/repository"
	"pharmacy-records/pkg/requestctx"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, action string, kind entity.EntityKind, entityID string, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, action string, kind entity.EntityKind, entityID string, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, action string, kind entity.EntityKind, entityID string, oldValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, action string, kind entity.EntityKind, entityID string, newValue interface{}) error {
	return s.write(ctx, tx, action, kind, entityID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, action string, kind entity.EntityKind, entityID string, oldValue, newValue interface{}) error {
	return s.write(ctx, tx, action, kind, entityID, oldValue, newValue)
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, action string, kind entity.EntityKind, entityID string, oldValue interface{}) error {
	return s.write(ctx, tx, action, kind, entityID, oldValue, nil)
}

// write inserts the audit row in the caller's transaction. A failure here
// aborts the transaction on Postgres, so it is returned rather than swallowed.
func (s *auditService) write(ctx context.Context, tx *gorm.DB, action string, kind entity.EntityKind, entityID string, oldValue, newValue interface{}) error {
	metadata := entity.JSON{
		"entity":    kind.String(),
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	}

	auditLog := &entity.AuditLog{
		Actor:    requestctx.Actor(ctx),
		Action:   action,
		Metadata: metadata,
	}
	if requestID, ok := requestctx.RequestID(ctx); ok {
		auditLog.RequestID = requestID
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
