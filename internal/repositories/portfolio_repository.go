package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPortfolioItemNotFound = errors.New("portfolio item not found")
)

type PortfolioRepository interface {
	Create(db *gorm.DB, item *models.PortfolioItem) error
	FindByID(db *gorm.DB, id string) (*models.PortfolioItem, error)
	FindAll(db *gorm.DB) ([]models.PortfolioItem, error)
	FindByCategory(db *gorm.DB, category string) ([]models.PortfolioItem, error)
	Update(db *gorm.DB, id string, columns map[string]interface{}) error
	Delete(db *gorm.DB, id string) error
}

type portfolioRepository struct{}

func NewPortfolioRepository() PortfolioRepository {
	return &portfolioRepository{}
}

func (r *portfolioRepository) Create(db *gorm.DB, item *models.PortfolioItem) error {
	return db.Create(item).Error
}

func (r *portfolioRepository) FindByID(db *gorm.DB, id string) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := db.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *portfolioRepository) FindAll(db *gorm.DB) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := db.Scopes(OrderedWithFeatured).Find(&items).Error
	return items, err
}

func (r *portfolioRepository) FindByCategory(db *gorm.DB, category string) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := db.Scopes(OrderedWithFeatured).Where("category = ?", category).Find(&items).Error
	return items, err
}

// Update applies only the columns explicitly present, so omitted fields are
// preserved on partial edits. An empty column map is a no-op.
func (r *portfolioRepository) Update(db *gorm.DB, id string, columns map[string]interface{}) error {
	if len(columns) == 0 {
		return checkExists(db, &models.PortfolioItem{}, id, ErrPortfolioItemNotFound)
	}
	result := db.Model(&models.PortfolioItem{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPortfolioItemNotFound
	}
	return nil
}

func (r *portfolioRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.PortfolioItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPortfolioItemNotFound
	}
	return nil
}
