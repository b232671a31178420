package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrClientNotFound = errors.New("client not found")

type ClientRepository interface {
	Create(db *gorm.DB, client *models.Client) error
	FindByID(db *gorm.DB, id string) (*models.Client, error)
	FindAll(db *gorm.DB) ([]models.Client, error)
	Update(db *gorm.DB, id string, columns map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
}

type clientRepository struct{}

func NewClientRepository() ClientRepository {
	return &clientRepository{}
}

func (r *clientRepository) Create(db *gorm.DB, client *models.Client) error {
	return db.Create(client).Error
}

func (r *clientRepository) FindByID(db *gorm.DB, id string) (*models.Client, error) {
	var client models.Client
	err := db.First(&client, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindAll(db *gorm.DB) ([]models.Client, error) {
	var clients []models.Client
	err := db.Scopes(OrderedWithFeatured).Find(&clients).Error
	return clients, err
}

func (r *clientRepository) Update(db *gorm.DB, id string, columns map[string]interface{}) error {
	if len(columns) == 0 {
		return checkExists(db, &models.Client{}, id, ErrClientNotFound)
	}
	result := db.Model(&models.Client{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *clientRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Client{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}
