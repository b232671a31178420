package services

import (
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/normalize"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PortfolioService interface {
	Create(db *gorm.DB, payload map[string]any) (*models.PortfolioItem, []string, error)
	Get(db *gorm.DB, id string) (*models.PortfolioItem, error)
	List(db *gorm.DB) ([]models.PortfolioItem, error)
	ListByCategory(db *gorm.DB, category string) ([]models.PortfolioItem, error)
	Update(db *gorm.DB, id string, payload map[string]any) (*models.PortfolioItem, []string, error)
	Delete(db *gorm.DB, id string) error
}

type portfolioService struct {
	repo repositories.PortfolioRepository
}

func NewPortfolioService(repo repositories.PortfolioRepository) PortfolioService {
	return &portfolioService{repo: repo}
}

func (s *portfolioService) Create(db *gorm.DB, payload map[string]any) (*models.PortfolioItem, []string, error) {
	payload = normalize.Aliases(payload)
	warnings := normalize.Warnings(payload)

	item := &models.PortfolioItem{
		Title:         payloadString(payload["title"]),
		Summary:       payloadString(payload["summary"]),
		Client:        payloadString(payload["client"]),
		Category:      payloadString(payload["category"]),
		MediaType:     normalize.MediaType(payloadString(payload["mediaType"])),
		VideoProvider: payloadString(payload["videoProvider"]),
		VideoID:       payloadString(payload["videoId"]),
		MediaURL:      payloadString(payload["mediaUrl"]),
		ThumbnailURL:  payloadString(payload["thumbnailUrl"]),
		DocumentURL:   payloadString(payload["documentUrl"]),
		ExternalURL:   payloadString(payload["externalUrl"]),
		Content:       emptyJSONObject(),
		Gallery:       emptyJSONArray(),
		Tags:          emptyJSONArray(),
	}

	if v, ok := payload["content"]; ok {
		item.Content = payloadJSONObject(v)
	}
	if v, ok := payload["gallery"]; ok {
		item.Gallery = payloadStringArray(v)
	}
	if v, ok := payload["tags"]; ok {
		item.Tags = payloadStringArray(v)
	}
	if v, ok := payload["featured"]; ok {
		item.Featured = payloadBool(v)
	}
	if v, ok := payload["order"]; ok {
		item.Order = payloadInt(v)
	}

	if err := s.repo.Create(db, item); err != nil {
		return nil, nil, apperrors.ErrDatabase(err, "portfolio")
	}
	return item, warnings, nil
}

func (s *portfolioService) Get(db *gorm.DB, id string) (*models.PortfolioItem, error) {
	item, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return nil, apperrors.ErrNotFound(err, "portfolio")
		}
		return nil, apperrors.ErrDatabase(err, "portfolio")
	}
	return item, nil
}

func (s *portfolioService) List(db *gorm.DB) ([]models.PortfolioItem, error) {
	items, err := s.repo.FindAll(db)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "portfolio")
	}
	return items, nil
}

func (s *portfolioService) ListByCategory(db *gorm.DB, category string) ([]models.PortfolioItem, error) {
	items, err := s.repo.FindByCategory(db, category)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "portfolio")
	}
	return items, nil
}

// Update builds a column map containing only keys explicitly present in the
// payload. Omitted fields stay untouched; an empty payload changes nothing.
func (s *portfolioService) Update(db *gorm.DB, id string, payload map[string]any) (*models.PortfolioItem, []string, error) {
	payload = normalize.Aliases(payload)
	warnings := normalize.Warnings(payload)

	columns := map[string]interface{}{}
	for field, value := range payload {
		switch field {
		case "title", "summary", "client", "category":
			columns[field] = payloadString(value)
		case "mediaType":
			columns["media_type"] = normalize.MediaType(payloadString(value))
		case "videoProvider":
			columns["video_provider"] = payloadString(value)
		case "videoId":
			columns["video_id"] = payloadString(value)
		case "mediaUrl":
			columns["media_url"] = payloadString(value)
		case "thumbnailUrl":
			columns["thumbnail_url"] = payloadString(value)
		case "documentUrl":
			columns["document_url"] = payloadString(value)
		case "externalUrl":
			columns["external_url"] = payloadString(value)
		case "content":
			columns["content"] = payloadJSONObject(value)
		case "gallery":
			columns["gallery"] = payloadStringArray(value)
		case "tags":
			columns["tags"] = payloadStringArray(value)
		case "featured":
			columns["featured"] = payloadBool(value)
		case "order":
			columns["order_index"] = payloadInt(value)
		}
	}

	if err := s.repo.Update(db, id, columns); err != nil {
		if apperrors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return nil, nil, apperrors.ErrNotFound(err, "portfolio")
		}
		return nil, nil, apperrors.ErrDatabase(err, "portfolio")
	}

	item, err := s.repo.FindByID(db, id)
	if err != nil {
		return nil, nil, apperrors.ErrDatabase(err, "portfolio")
	}
	return item, warnings, nil
}

func (s *portfolioService) Delete(db *gorm.DB, id string) error {
	if err := s.repo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrPortfolioItemNotFound) {
			return apperrors.ErrNotFound(err, "portfolio")
		}
		return apperrors.ErrDatabase(err, "portfolio")
	}
	return nil
}
