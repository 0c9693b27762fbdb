package models

// TeamMember is read-only from the API; rows are managed out of band.
type TeamMember struct {
	BaseModel
	Name     string `gorm:"not null" json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}
