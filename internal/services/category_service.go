package services

import (
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/normalize"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CategoryService interface {
	Create(db *gorm.DB, payload map[string]any) (*models.Category, error)
	Get(db *gorm.DB, id string) (*models.Category, error)
	List(db *gorm.DB) ([]models.Category, error)
	Update(db *gorm.DB, id string, payload map[string]any) (*models.Category, error)
	Delete(db *gorm.DB, id string) error
}

type categoryService struct {
	repo repositories.CategoryRepository
}

func NewCategoryService(repo repositories.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(db *gorm.DB, payload map[string]any) (*models.Category, error) {
	payload = normalize.Aliases(payload)

	category := &models.Category{
		Name:        payloadString(payload["name"]),
		Description: payloadString(payload["description"]),
		Color:       payloadString(payload["color"]),
		Icon:        payloadString(payload["icon"]),
	}
	if v, ok := payload["order"]; ok {
		category.Order = payloadInt(v)
	}

	if err := s.repo.Create(db, category); err != nil {
		return nil, apperrors.ErrDatabase(err, "categories")
	}
	return category, nil
}

func (s *categoryService) Get(db *gorm.DB, id string) (*models.Category, error) {
	category, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNotFound(err, "categories")
		}
		return nil, apperrors.ErrDatabase(err, "categories")
	}
	return category, nil
}

func (s *categoryService) List(db *gorm.DB) ([]models.Category, error) {
	categories, err := s.repo.FindAll(db)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "categories")
	}
	return categories, nil
}

func (s *categoryService) Update(db *gorm.DB, id string, payload map[string]any) (*models.Category, error) {
	payload = normalize.Aliases(payload)

	columns := map[string]interface{}{}
	for field, value := range payload {
		switch field {
		case "name", "description", "color", "icon":
			columns[field] = payloadString(value)
		case "order":
			columns["order_index"] = payloadInt(value)
		}
	}

	if err := s.repo.Update(db, id, columns); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNotFound(err, "categories")
		}
		return nil, apperrors.ErrDatabase(err, "categories")
	}

	category, err := s.repo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "categories")
	}
	return category, nil
}

func (s *categoryService) Delete(db *gorm.DB, id string) error {
	if err := s.repo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.ErrNotFound(err, "categories")
		}
		return apperrors.ErrDatabase(err, "categories")
	}
	return nil
}
