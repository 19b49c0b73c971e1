package repository

import (
	"github.com/camden-git/starblogbackend/models"
)

// PlanetRepositoryInterface defines the methods for planet data operations
type PlanetRepositoryInterface interface {
	Create(planet *models.Planet) error
	GetByID(id uint) (*models.Planet, error)
	ListAll() ([]models.Planet, error)
	Delete(id uint) (*models.Planet, error)
}

// CharacterRepositoryInterface defines the methods for character data operations
type CharacterRepositoryInterface interface {
	Create(character *models.Character) error
	GetByID(id uint) (*models.Character, error)
	ListAll() ([]models.Character, error)
	Delete(id uint) (*models.Character, error)
}

// UserRepositoryInterface defines the methods for user data operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	ListAll() ([]models.User, error)
	Delete(id uint) error
}

// FavoriteRepositoryInterface defines the methods for favorite data operations
type FavoriteRepositoryInterface interface {
	Create(favorite *models.Favorite) error
	ListByUserID(userID uint) ([]models.Favorite, error)
	DeleteByUserAndPlanet(userID, planetID uint) error
	DeleteByUserAndCharacter(userID, characterID uint) error
}
