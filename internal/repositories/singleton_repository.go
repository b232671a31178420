package repositories

import (
	"errors"
	"time"

	"portfolio_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SingletonRepository stores one JSON document per kind. The unique index on
// kind plus INSERT ... ON CONFLICT makes the upsert atomic: concurrent writes
// against an empty table can never leave two rows behind.
type SingletonRepository interface {
	Get(db *gorm.DB, kind models.SingletonKind) (datatypes.JSON, error)
	Upsert(db *gorm.DB, kind models.SingletonKind, data datatypes.JSON) error

	GetAnalytics(db *gorm.DB) (*models.AnalyticsSettings, error)
	UpsertAnalytics(db *gorm.DB, columns map[string]interface{}) (*models.AnalyticsSettings, error)
}

type singletonRepository struct{}

func NewSingletonRepository() SingletonRepository {
	return &singletonRepository{}
}

// Get returns the document for kind, or an empty object when none exists.
// Absence is not an error for singletons.
func (r *singletonRepository) Get(db *gorm.DB, kind models.SingletonKind) (datatypes.JSON, error) {
	var doc models.SingletonDocument
	err := db.First(&doc, "kind = ?", kind).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return datatypes.JSON("{}"), nil
		}
		return nil, err
	}
	if len(doc.Data) == 0 {
		return datatypes.JSON("{}"), nil
	}
	return doc.Data, nil
}

func (r *singletonRepository) Upsert(db *gorm.DB, kind models.SingletonKind, data datatypes.JSON) error {
	doc := models.SingletonDocument{
		Kind: kind,
		Data: data,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "kind"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"data":       data,
			"updated_at": time.Now(),
		}),
	}).Create(&doc).Error
}

func (r *singletonRepository) GetAnalytics(db *gorm.DB) (*models.AnalyticsSettings, error) {
	var settings models.AnalyticsSettings
	err := db.First(&settings, "key = ?", "default").Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.AnalyticsSettings{Key: "default"}, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *singletonRepository) UpsertAnalytics(db *gorm.DB, columns map[string]interface{}) (*models.AnalyticsSettings, error) {
	settings := models.AnalyticsSettings{Key: "default"}
	if v, ok := columns["provider"]; ok {
		settings.Provider, _ = v.(string)
	}
	if v, ok := columns["measurement_id"]; ok {
		settings.MeasurementID, _ = v.(string)
	}
	if v, ok := columns["enabled"]; ok {
		settings.Enabled, _ = v.(bool)
	}

	assignments := make(map[string]interface{}, len(columns)+1)
	for col, val := range columns {
		assignments[col] = val
	}
	assignments["updated_at"] = time.Now()

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&settings).Error
	if err != nil {
		return nil, err
	}
	return r.GetAnalytics(db)
}
