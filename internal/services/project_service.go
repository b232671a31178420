package services

import (
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/normalize"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProjectService interface {
	Create(db *gorm.DB, payload map[string]any) (*models.Project, error)
	Get(db *gorm.DB, id string) (*models.Project, error)
	List(db *gorm.DB) ([]models.Project, error)
	Update(db *gorm.DB, id string, payload map[string]any) (*models.Project, error)
	Delete(db *gorm.DB, id string) error
}

type projectService struct {
	repo repositories.ProjectRepository
}

func NewProjectService(repo repositories.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func (s *projectService) Create(db *gorm.DB, payload map[string]any) (*models.Project, error) {
	payload = normalize.Aliases(payload)

	project := &models.Project{
		Title:        payloadString(payload["title"]),
		Description:  payloadString(payload["description"]),
		Client:       payloadString(payload["client"]),
		Category:     payloadString(payload["category"]),
		Duration:     payloadString(payload["duration"]),
		Year:         payloadString(payload["year"]),
		VideoURL:     payloadString(payload["videoUrl"]),
		ThumbnailURL: payloadString(payload["thumbnailUrl"]),
		Tags:         emptyJSONArray(),
	}

	if v, ok := payload["tags"]; ok {
		project.Tags = payloadStringArray(v)
	}
	if v, ok := payload["featured"]; ok {
		project.Featured = payloadBool(v)
	}
	if v, ok := payload["order"]; ok {
		project.Order = payloadInt(v)
	}

	if err := s.repo.Create(db, project); err != nil {
		return nil, apperrors.ErrDatabase(err, "projects")
	}
	return project, nil
}

func (s *projectService) Get(db *gorm.DB, id string) (*models.Project, error) {
	project, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err, "projects")
		}
		return nil, apperrors.ErrDatabase(err, "projects")
	}
	return project, nil
}

func (s *projectService) List(db *gorm.DB) ([]models.Project, error) {
	projects, err := s.repo.FindAll(db)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "projects")
	}
	return projects, nil
}

func (s *projectService) Update(db *gorm.DB, id string, payload map[string]any) (*models.Project, error) {
	payload = normalize.Aliases(payload)

	columns := map[string]interface{}{}
	for field, value := range payload {
		switch field {
		case "title", "description", "client", "category", "duration", "year":
			columns[field] = payloadString(value)
		case "videoUrl":
			columns["video_url"] = payloadString(value)
		case "thumbnailUrl":
			columns["thumbnail_url"] = payloadString(value)
		case "tags":
			columns["tags"] = payloadStringArray(value)
		case "featured":
			columns["featured"] = payloadBool(value)
		case "order":
			columns["order_index"] = payloadInt(value)
		}
	}

	if err := s.repo.Update(db, id, columns); err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err, "projects")
		}
		return nil, apperrors.ErrDatabase(err, "projects")
	}

	project, err := s.repo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "projects")
	}
	return project, nil
}

func (s *projectService) Delete(db *gorm.DB, id string) error {
	if err := s.repo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.ErrNotFound(err, "projects")
		}
		return apperrors.ErrDatabase(err, "projects")
	}
	return nil
}
