package usecase

import (
	"context"
	"time"

	"pharmacy-records/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MutationRecorder receives the outcome of every mutation.
type MutationRecorder interface {
	RecordMutation(operation, outcome string, duration time.Duration)
}

// ReportInvalidator is told about every committed mutation.
type ReportInvalidator interface {
	Invalidate(ctx context.Context) error
}

// TxRunner runs one mutation as one transaction: the callback either commits
// in full or leaves no trace.
type TxRunner struct {
	db          *gorm.DB
	log         *logrus.Logger
	recorder    MutationRecorder
	invalidator ReportInvalidator
}

func NewTxRunner(db *gorm.DB, log *logrus.Logger, recorder MutationRecorder, invalidator ReportInvalidator) *TxRunner {
	return &TxRunner{
		db:          db,
		log:         log,
		recorder:    recorder,
		invalidator: invalidator,
	}
}

// Run executes fn inside a transaction named by operation. Database errors are
// translated into apperror values before they reach the caller.
func (r *TxRunner) Run(ctx context.Context, operation string, fn func(tx *gorm.DB) error) (err error) {
	start := time.Now()
	defer func() {
		if r.recorder != nil {
			r.recorder.RecordMutation(operation, apperror.Outcome(err), time.Since(start))
		}
	}()

	if err = runInTx(ctx, r.db, fn); err != nil {
		err = translateDBError(err)
		r.log.Warnf("%s rejected: %+v", operation, err)
		return err
	}

	// The mutation is durable at this point; a stale cache is not worth failing it.
	if r.invalidator != nil {
		if invErr := r.invalidator.Invalidate(ctx); invErr != nil {
			r.log.Warnf("Failed to invalidate report cache after %s: %+v", operation, invErr)
		}
	}

	r.log.Debugf("%s committed in %v", operation, time.Since(start))
	return nil
}

func runInTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}
	return nil
}
