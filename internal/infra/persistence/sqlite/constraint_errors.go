package sqlite

import (
	"strings"

	"ctf/internal/errors"

	"gorm.io/gorm"
)

// Helper functions for SQLite constraint checking. TranslateError maps the
// go-sqlite3 extended codes onto GORM's sentinels; the message checks cover
// errors that reach us untranslated (raw Exec, wrapped driver errors).
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
