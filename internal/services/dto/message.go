package dto

type ContactRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Email string `json:"email" validate:"required,email"`
	Body  string `json:"body" validate:"required,max=5000"`
}

type ReplyRequest struct {
	Body string `json:"body" validate:"required,max=5000"`
}
