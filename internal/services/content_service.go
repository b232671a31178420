package services

import (
	"encoding/json"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/normalize"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// pageContentPublicFields is the projection for the unauthenticated
// page-content read. Everything else in the document (SEO copy, hero text,
// about copy) stays admin-only.
var pageContentPublicFields = []string{"contactEmail", "contactPhone", "contactLocation"}

// ContentService manages the singleton content documents and their public
// projections.
type ContentService interface {
	GetDocument(db *gorm.DB, kind models.SingletonKind) (map[string]any, error)
	UpdateDocument(db *gorm.DB, kind models.SingletonKind, payload map[string]any) (map[string]any, error)
	GetPublicPageContent(db *gorm.DB) (map[string]any, error)

	GetAnalytics(db *gorm.DB) (*models.AnalyticsSettings, error)
	UpdateAnalytics(db *gorm.DB, payload map[string]any) (*models.AnalyticsSettings, error)
}

type contentService struct {
	repo repositories.SingletonRepository
}

func NewContentService(repo repositories.SingletonRepository) ContentService {
	return &contentService{repo: repo}
}

// GetDocument returns the stored document, or an empty object when the
// singleton has never been written. Absence is never an error.
func (s *contentService) GetDocument(db *gorm.DB, kind models.SingletonKind) (map[string]any, error) {
	if !models.KnownSingletonKinds[kind] {
		return nil, apperrors.NewNotFoundError("content", "Unknown content document")
	}

	data, err := s.repo.Get(db, kind)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "content")
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil || doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

func (s *contentService) UpdateDocument(db *gorm.DB, kind models.SingletonKind, payload map[string]any) (map[string]any, error) {
	if !models.KnownSingletonKinds[kind] {
		return nil, apperrors.NewNotFoundError("content", "Unknown content document")
	}

	doc := normalize.JSONObject(payload)
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.repo.Upsert(db, kind, data); err != nil {
		return nil, apperrors.ErrDatabase(err, "content")
	}
	return doc, nil
}

// GetPublicPageContent projects the page-content document down to the
// contact fields visitors need.
func (s *contentService) GetPublicPageContent(db *gorm.DB) (map[string]any, error) {
	doc, err := s.GetDocument(db, models.KindPageContent)
	if err != nil {
		return nil, err
	}
	return ProjectFields(doc, pageContentPublicFields), nil
}

func (s *contentService) GetAnalytics(db *gorm.DB) (*models.AnalyticsSettings, error) {
	settings, err := s.repo.GetAnalytics(db)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "content")
	}
	return settings, nil
}

func (s *contentService) UpdateAnalytics(db *gorm.DB, payload map[string]any) (*models.AnalyticsSettings, error) {
	payload = normalize.Aliases(payload)

	columns := map[string]interface{}{}
	for field, value := range payload {
		switch field {
		case "provider":
			columns["provider"] = payloadString(value)
		case "measurementId":
			columns["measurement_id"] = payloadString(value)
		case "enabled":
			columns["enabled"] = payloadBool(value)
		}
	}

	settings, err := s.repo.UpsertAnalytics(db, columns)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "content")
	}
	return settings, nil
}

// ProjectFields hand-picks the listed keys from doc. Missing keys are simply
// absent from the result.
func ProjectFields(doc map[string]any, fields []string) map[string]any {
	out := make(map[string]any, len(fields))
	for _, field := range fields {
		if value, ok := doc[field]; ok {
			out[field] = value
		}
	}
	return out
}
