package models

import "gorm.io/datatypes"

// Project is the legacy video-project entity. It predates PortfolioItem and
// stays narrower: a single video URL plus metadata.
type Project struct {
	BaseModel
	Title        string         `json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Client       string         `json:"client"`
	Category     string         `gorm:"index" json:"category"`
	Duration     string         `json:"duration"`
	Year         string         `json:"year"`
	Tags         datatypes.JSON `json:"tags"`
	VideoURL     string         `gorm:"size:500" json:"videoUrl"`
	ThumbnailURL string         `gorm:"size:500" json:"thumbnailUrl"`
	Featured     bool           `gorm:"default:false;index" json:"featured"`
	Order        int            `gorm:"column:order_index;default:0" json:"order"`
}
