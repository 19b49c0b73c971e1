package models

// Character mirrors a SWAPI person record. Height and birth year are kept as
// strings because the upstream data uses values like "unknown" and "19BBY".
type Character struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UID       string  `gorm:"uniqueIndex;not null" json:"uid"`
	Name      string  `gorm:"not null" json:"name"`
	Gender    *string `json:"gender"`
	BirthYear *string `json:"birth_year"`
	Height    *string `json:"height"`
	URL       *string `json:"url"`
}

func (Character) TableName() string {
	return "characters"
}
