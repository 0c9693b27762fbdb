package models

// Message is an inbound contact-form submission.
type Message struct {
	BaseModel
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Body    string `gorm:"not null" json:"body"`
	Read    bool   `gorm:"not null;default:false" json:"read"`
	Replied bool   `gorm:"not null;default:false" json:"replied"`
}
