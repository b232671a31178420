package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// OrderedWithFeatured applies the list tie-break used across all entity
// lists: featured entries first, then the manual sort key, newest last-resort.
func OrderedWithFeatured(db *gorm.DB) *gorm.DB {
	return db.Order("featured DESC").Order("order_index ASC").Order("created_at DESC")
}

// Ordered is the same rule for entities without a featured flag.
func Ordered(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC").Order("created_at DESC")
}

// checkExists resolves the not-found error for a zero-column update, keeping
// "update with empty payload" distinguishable from "no such row".
func checkExists(db *gorm.DB, model interface{}, id string, notFound error) error {
	err := db.Select("id").First(model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
