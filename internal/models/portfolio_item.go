package models

import "gorm.io/datatypes"

// MediaType enumerates the kind of a portfolio entry's primary asset.
type MediaType string

const (
	MediaTypeVideo    MediaType = "VIDEO"
	MediaTypeImage    MediaType = "IMAGE"
	MediaTypeArticle  MediaType = "ARTICLE"
	MediaTypeDocument MediaType = "DOCUMENT"
	MediaTypeGallery  MediaType = "GALLERY"
	MediaTypeText     MediaType = "TEXT"
)

// KnownMediaTypes is the full enumerated set. Anything outside it is
// coerced to MediaTypeVideo on write.
var KnownMediaTypes = map[MediaType]bool{
	MediaTypeVideo:    true,
	MediaTypeImage:    true,
	MediaTypeArticle:  true,
	MediaTypeDocument: true,
	MediaTypeGallery:  true,
	MediaTypeText:     true,
}

// PortfolioItem is the primary content entity. Content holds a
// mediaType-dependent payload; Gallery is an ordered URL list; Tags is an
// unordered string set. Category is free text, constrained only by the UI.
type PortfolioItem struct {
	BaseModel
	Title         string         `json:"title"`
	Summary       string         `gorm:"type:text" json:"summary"`
	Client        string         `json:"client"`
	Category      string         `gorm:"index" json:"category"`
	MediaType     MediaType      `gorm:"type:varchar(16);default:'VIDEO'" json:"mediaType"`
	VideoProvider string         `json:"videoProvider"`
	VideoID       string         `json:"videoId"`
	MediaURL      string         `gorm:"size:500" json:"mediaUrl"`
	ThumbnailURL  string         `gorm:"size:500" json:"thumbnailUrl"`
	DocumentURL   string         `gorm:"size:500" json:"documentUrl"`
	ExternalURL   string         `gorm:"size:500" json:"externalUrl"`
	Content       datatypes.JSON `json:"content"`
	Gallery       datatypes.JSON `json:"gallery"`
	Tags          datatypes.JSON `json:"tags"`
	Featured      bool           `gorm:"default:false;index" json:"featured"`
	Order         int            `gorm:"column:order_index;default:0" json:"order"`
}
