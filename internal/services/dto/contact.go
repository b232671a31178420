package dto

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=300"`
	Message string `json:"message" validate:"required,max=5000"`
}
