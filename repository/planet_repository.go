package repository

import (
	"fmt"

	"github.com/camden-git/starblogbackend/models"
	"gorm.io/gorm"
)

// PlanetRepository handles database operations for Planet entities
type PlanetRepository struct {
	DB *gorm.DB
}

// NewPlanetRepository creates a new instance of PlanetRepository
func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{DB: db}
}

// Create persists a new planet. Uniqueness of the uid is enforced by the
// index, not a prior lookup; a collision comes back as ErrDuplicate.
func (r *PlanetRepository) Create(planet *models.Planet) error {
	if err := translateError(r.DB.Create(planet).Error); err != nil {
		return fmt.Errorf("failed to create planet %s: %w", planet.Name, err)
	}
	return nil
}

// GetByID retrieves a planet by its surrogate id
func (r *PlanetRepository) GetByID(id uint) (*models.Planet, error) {
	var planet models.Planet
	if err := r.DB.First(&planet, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &planet, nil
}

// ListAll retrieves all planets in insertion order
func (r *PlanetRepository) ListAll() ([]models.Planet, error) {
	var planets []models.Planet
	if err := r.DB.Order("id ASC").Find(&planets).Error; err != nil {
		return nil, fmt.Errorf("failed to list planets: %w", err)
	}
	return planets, nil
}

// Delete removes a planet by id and returns the removed row. Dependent
// favorites are cascaded away by the foreign-key constraint.
func (r *PlanetRepository) Delete(id uint) (*models.Planet, error) {
	planet, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	result := r.DB.Delete(&models.Planet{}, id)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to delete planet ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return planet, nil
}
