package models

// User is an admin account. There is no public registration path.
type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Disabled     bool   `gorm:"not null;default:false" json:"disabled"`
}
