package services

import (
	"portfolio_backend/internal/email"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"
)

// ContactService forwards visitor contact-form submissions to the site
// owner by mail.
type ContactService interface {
	Submit(req *dto.ContactRequest) error
}

type contactService struct {
	mailer email.Mailer
}

func NewContactService(mailer email.Mailer) ContactService {
	return &contactService{mailer: mailer}
}

func (s *contactService) Submit(req *dto.ContactRequest) error {
	subject := req.Subject
	if subject == "" {
		subject = "New message from the portfolio site"
	}

	if err := s.mailer.SendContactMessage(req.Name, req.Email, subject, req.Message); err != nil {
		return apperrors.UpstreamError(err, "contact")
	}
	return nil
}
