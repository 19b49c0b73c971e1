package models

// Planet mirrors a SWAPI planet record. UID is the external/natural
// identifier clients know the planet by; ID is the internal surrogate key.
type Planet struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UID        string  `gorm:"uniqueIndex;not null" json:"uid"`
	Name       string  `gorm:"not null" json:"name"`
	Climate    *string `json:"climate"`
	Terrain    *string `json:"terrain"`
	Population *string `json:"population"`
	URL        *string `json:"url"`
}

func (Planet) TableName() string {
	return "planets"
}
