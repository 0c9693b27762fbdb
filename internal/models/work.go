package models

import "time"

// Work is a single portfolio piece. StoragePath and ImageURL always refer to
// the same blob.
type Work struct {
	BaseModel
	Title       string    `gorm:"not null" json:"title"`
	Category    string    `gorm:"not null;index" json:"category"`
	Description string    `json:"description"`
	Client      string    `json:"client"`
	Artist      string    `gorm:"not null" json:"artist"`
	Year        int       `json:"year"`
	ImageURL    string    `gorm:"not null" json:"image_url"`
	StoragePath string    `gorm:"not null" json:"-"`
	Size        int64     `json:"size"`
	Views       int64     `gorm:"not null;default:0" json:"views"`
	UploadedAt  time.Time `gorm:"index" json:"uploaded_at"`
}
