package models

// User represents a registered account. Passwords are stored as-is; there is
// no credential flow on top of this table yet, so hashing is deferred until an
// auth layer exists.
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // never serialized
	IsActive bool   `gorm:"not null" json:"is_active"`
}

// TableName explicitly sets the table name for GORM.
func (User) TableName() string {
	return "users"
}
