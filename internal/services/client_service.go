package services

import (
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/normalize"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ClientService interface {
	Create(db *gorm.DB, payload map[string]any) (*models.Client, error)
	Get(db *gorm.DB, id string) (*models.Client, error)
	List(db *gorm.DB) ([]models.Client, error)
	Update(db *gorm.DB, id string, payload map[string]any) (*models.Client, error)
	Delete(db *gorm.DB, id string) error
}

type clientService struct {
	repo repositories.ClientRepository
}

func NewClientService(repo repositories.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

// clampRating keeps testimonial ratings within 1-5; out-of-range input
// degrades to the nearest bound.
func clampRating(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}

func (s *clientService) Create(db *gorm.DB, payload map[string]any) (*models.Client, error) {
	payload = normalize.Aliases(payload)

	client := &models.Client{
		Name:        payloadString(payload["name"]),
		LogoURL:     payloadString(payload["logoUrl"]),
		Project:     payloadString(payload["project"]),
		Category:    payloadString(payload["category"]),
		Description: payloadString(payload["description"]),
		Testimonial: payloadString(payload["testimonial"]),
		ClientName:  payloadString(payload["clientName"]),
		Year:        payloadString(payload["year"]),
		Rating:      5,
	}

	if v, ok := payload["rating"]; ok {
		client.Rating = clampRating(payloadInt(v))
	}
	if v, ok := payload["featured"]; ok {
		client.Featured = payloadBool(v)
	}
	if v, ok := payload["order"]; ok {
		client.Order = payloadInt(v)
	}

	if err := s.repo.Create(db, client); err != nil {
		return nil, apperrors.ErrDatabase(err, "clients")
	}
	return client, nil
}

func (s *clientService) Get(db *gorm.DB, id string) (*models.Client, error) {
	client, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrClientNotFound) {
			return nil, apperrors.ErrNotFound(err, "clients")
		}
		return nil, apperrors.ErrDatabase(err, "clients")
	}
	return client, nil
}

func (s *clientService) List(db *gorm.DB) ([]models.Client, error) {
	clients, err := s.repo.FindAll(db)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "clients")
	}
	return clients, nil
}

func (s *clientService) Update(db *gorm.DB, id string, payload map[string]any) (*models.Client, error) {
	payload = normalize.Aliases(payload)

	columns := map[string]interface{}{}
	for field, value := range payload {
		switch field {
		case "name", "project", "category", "description", "testimonial", "year":
			columns[field] = payloadString(value)
		case "logoUrl":
			columns["logo_url"] = payloadString(value)
		case "clientName":
			columns["client_name"] = payloadString(value)
		case "rating":
			columns["rating"] = clampRating(payloadInt(value))
		case "featured":
			columns["featured"] = payloadBool(value)
		case "order":
			columns["order_index"] = payloadInt(value)
		}
	}

	if err := s.repo.Update(db, id, columns); err != nil {
		if apperrors.Is(err, repositories.ErrClientNotFound) {
			return nil, apperrors.ErrNotFound(err, "clients")
		}
		return nil, apperrors.ErrDatabase(err, "clients")
	}

	client, err := s.repo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "clients")
	}
	return client, nil
}

func (s *clientService) Delete(db *gorm.DB, id string) error {
	if err := s.repo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrClientNotFound) {
			return apperrors.ErrNotFound(err, "clients")
		}
		return apperrors.ErrDatabase(err, "clients")
	}
	return nil
}
