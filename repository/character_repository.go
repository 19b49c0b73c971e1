package repository

import (
	"fmt"

	"github.com/camden-git/starblogbackend/models"
	"gorm.io/gorm"
)

// CharacterRepository handles database operations for Character entities
type CharacterRepository struct {
	DB *gorm.DB
}

// NewCharacterRepository creates a new instance of CharacterRepository
func NewCharacterRepository(db *gorm.DB) *CharacterRepository {
	return &CharacterRepository{DB: db}
}

// Create persists a new character, constraint-first like planets
func (r *CharacterRepository) Create(character *models.Character) error {
	if err := translateError(r.DB.Create(character).Error); err != nil {
		return fmt.Errorf("failed to create character %s: %w", character.Name, err)
	}
	return nil
}

// GetByID retrieves a character by its surrogate id
func (r *CharacterRepository) GetByID(id uint) (*models.Character, error) {
	var character models.Character
	if err := r.DB.First(&character, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &character, nil
}

// ListAll retrieves all characters in insertion order
func (r *CharacterRepository) ListAll() ([]models.Character, error) {
	var characters []models.Character
	if err := r.DB.Order("id ASC").Find(&characters).Error; err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	return characters, nil
}

// Delete removes a character by id and returns the removed row
func (r *CharacterRepository) Delete(id uint) (*models.Character, error) {
	character, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	result := r.DB.Delete(&models.Character{}, id)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to delete character ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return character, nil
}
