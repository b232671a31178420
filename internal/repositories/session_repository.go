package repositories

import (
	"errors"
	"time"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Create(db *gorm.DB, session *models.Session) error
	FindByTokenID(db *gorm.DB, tokenID string) (*models.Session, error)
	Revoke(db *gorm.DB, tokenID string) error
	DeleteExpired(db *gorm.DB) error
}

type sessionRepository struct{}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{}
}

func (r *sessionRepository) Create(db *gorm.DB, session *models.Session) error {
	return db.Create(session).Error
}

func (r *sessionRepository) FindByTokenID(db *gorm.DB, tokenID string) (*models.Session, error) {
	var session models.Session
	err := db.First(&session, "token_id = ?", tokenID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Revoke(db *gorm.DB, tokenID string) error {
	now := time.Now()
	result := db.Model(&models.Session{}).
		Where("token_id = ? AND revoked_at IS NULL", tokenID).
		Update("revoked_at", now)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteExpired removes sessions past their expiry. Called opportunistically
// at login so the table does not grow without bound.
func (r *sessionRepository) DeleteExpired(db *gorm.DB) error {
	return db.Where("expires_at < ?", time.Now()).Delete(&models.Session{}).Error
}
