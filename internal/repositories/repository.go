package repositories

import (
	"errors"

	"github.com/mattn/go-sqlite3"

	"github.com/pairlab/pairtinder/internal/models"
)

// translateErr maps SQLite constraint violations onto the model sentinel
// errors. Unique violations become ErrConflict, foreign key violations mean
// the caller referenced a row that does not exist.
func translateErr(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return models.ErrConflict
		case sqlite3.ErrConstraintForeignKey:
			return models.ErrNotFound
		}
	}
	return err
}
