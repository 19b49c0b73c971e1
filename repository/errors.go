package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Domain-level failures surfaced by the repositories. Handlers dispatch on
// these with errors.Is and never see raw driver errors.
var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate means an insert violated a uniqueness constraint
	// (user email, planet/character uid).
	ErrDuplicate = errors.New("record already exists")

	// ErrForeignKey means an insert referenced a row that does not exist.
	ErrForeignKey = errors.New("referenced record does not exist")

	// ErrInvalidTarget means a favorite named both or neither of
	// planet/character as its target.
	ErrInvalidTarget = errors.New("favorite must reference exactly one of planet or character")
)

// translateError maps GORM's translated driver errors onto the domain
// sentinels. Anything unrecognized is passed through untouched and ends up as
// a 500 at the handler boundary.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	default:
		return err
	}
}
