package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
	domainerrors "staff-roster.backend/internal/domain/errors"
)

const pqUniqueViolation = "23505"

// translateError maps driver errors onto domain sentinels. Unique violations
// become ErrConflict whichever driver raised them.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerrors.ErrNotFound
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", domainerrors.ErrConflict, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
