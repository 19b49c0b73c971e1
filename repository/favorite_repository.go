package repository

import (
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/camden-git/starblogbackend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteRepository handles database operations for Favorite entities.
// Writes go through GORM so constraint violations are translated; the read
// and lookup paths are plain SQL built with squirrel over the shared
// connection pool.
type FavoriteRepository struct {
	DB  *gorm.DB
	sql *sql.DB
	sb  sq.StatementBuilderType
}

// NewFavoriteRepository creates a new instance of FavoriteRepository
func NewFavoriteRepository(db *gorm.DB) (*FavoriteRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}

	sb := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	if db.Dialector.Name() == "postgres" {
		sb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return &FavoriteRepository{DB: db, sql: sqlDB, sb: sb}, nil
}

// Create persists a new favorite. Exactly one of PlanetID/CharacterID must be
// set; dangling references are rejected by the foreign-key constraints and
// come back as ErrForeignKey.
func (r *FavoriteRepository) Create(favorite *models.Favorite) error {
	hasPlanet := favorite.PlanetID != nil
	hasCharacter := favorite.CharacterID != nil
	if hasPlanet == hasCharacter {
		return ErrInvalidTarget
	}

	// only the row itself; referenced rows must already exist
	if err := translateError(r.DB.Omit(clause.Associations).Create(favorite).Error); err != nil {
		return fmt.Errorf("failed to create favorite for user %d: %w", favorite.UserID, err)
	}
	return nil
}

// ListByUserID retrieves all favorites belonging to a user, oldest first
func (r *FavoriteRepository) ListByUserID(userID uint) ([]models.Favorite, error) {
	queryBuilder := r.sb.Select("id", "user_id", "planet_id", "character_id").
		From("favorites").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id ASC")

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for ListByUserID: %w", err)
	}

	rows, err := r.sql.Query(sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute ListByUserID query: %w", err)
	}
	defer rows.Close()

	favorites := []models.Favorite{}
	for rows.Next() {
		var f models.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.PlanetID, &f.CharacterID); err != nil {
			return nil, fmt.Errorf("error scanning favorite row: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return favorites, fmt.Errorf("error iterating favorite rows: %w", err)
	}
	return favorites, nil
}

// findID returns the id of the oldest favorite matching the predicate, or
// ErrNotFound when the user has no such bookmark.
func (r *FavoriteRepository) findID(pred sq.Eq) (uint, error) {
	queryBuilder := r.sb.Select("id").
		From("favorites").
		Where(pred).
		OrderBy("id ASC").
		Limit(1)

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build SQL for favorite lookup: %w", err)
	}

	var id uint
	err = r.sql.QueryRow(sqlStr, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to execute favorite lookup: %w", err)
	}
	return id, nil
}

// DeleteByUserAndPlanet removes the user's bookmark of the given planet
func (r *FavoriteRepository) DeleteByUserAndPlanet(userID, planetID uint) error {
	id, err := r.findID(sq.Eq{"user_id": userID, "planet_id": planetID})
	if err != nil {
		return err
	}
	return r.deleteByID(id)
}

// DeleteByUserAndCharacter removes the user's bookmark of the given character
func (r *FavoriteRepository) DeleteByUserAndCharacter(userID, characterID uint) error {
	id, err := r.findID(sq.Eq{"user_id": userID, "character_id": characterID})
	if err != nil {
		return err
	}
	return r.deleteByID(id)
}

func (r *FavoriteRepository) deleteByID(id uint) error {
	result := r.DB.Delete(&models.Favorite{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete favorite ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
