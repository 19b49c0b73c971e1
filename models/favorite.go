package models

// Favorite is a bookmark associating a user with exactly one target, either a
// planet or a character. The schema keeps both target columns nullable; the
// repository layer enforces the exactly-one rule since it is the sole writer.
type Favorite struct {
	ID          uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint  `gorm:"not null;index" json:"user_id"`
	PlanetID    *uint `gorm:"index" json:"planet_id"`
	CharacterID *uint `gorm:"index" json:"character_id"`

	// deleting a user or a bookmarked target removes its favorites
	User      User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Planet    *Planet    `gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE" json:"-"`
	Character *Character `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Favorite) TableName() string {
	return "favorites"
}
