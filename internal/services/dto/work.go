package dto

import "mime/multipart"

// UploadWorkRequest is populated from the multipart form. Field validation
// happens in the service so the checks run in a fixed order.
type UploadWorkRequest struct {
	Title       string
	Category    string
	Description string
	Client      string
	Artist      string
	Year        int
	File        *multipart.FileHeader
}

// UpdateWorkRequest carries a partial edit; nil fields stay untouched.
type UpdateWorkRequest struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Client      *string `json:"client"`
	Artist      *string `json:"artist"`
	Year        *int    `json:"year"`
}

type DashboardStats struct {
	TotalWorks     int64 `json:"total_works"`
	TotalViews     int64 `json:"total_views"`
	StorageBytes   int64 `json:"storage_bytes"`
	TotalMessages  int64 `json:"total_messages"`
	UnreadMessages int64 `json:"unread_messages"`
}
