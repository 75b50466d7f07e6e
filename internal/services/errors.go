package services

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"cityguide/internal/validation"
	"cityguide/pkg/utils"
)

// storageError converts a repository failure into the service taxonomy. A
// unique index violation means a concurrent writer won the race after the
// pre-check passed.
func storageError(log *zap.Logger, op string, err error, conflictMsg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.Conflict("%s", conflictMsg)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return utils.NotFound("referenced record does not exist")
	}
	log.Error("storage failure", zap.String("op", op), zap.Error(err))
	return utils.Internal(err)
}

func validateRequest(req interface{}) error {
	if err := validation.ValidateStruct(req); err != nil {
		return &utils.AppError{Kind: utils.KindValidation, Message: err.Error(), Err: err}
	}
	return nil
}

// defaultRelations returns relations, or fallback when the caller asked for
// none.
func defaultRelations(relations []string, fallback ...string) []string {
	if len(relations) > 0 {
		return relations
	}
	return fallback
}
