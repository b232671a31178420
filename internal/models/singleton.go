package models

import "gorm.io/datatypes"

// SingletonKind names one singleton content document.
type SingletonKind string

const (
	KindSiteSettings SingletonKind = "site_settings"
	KindPageContent  SingletonKind = "page_content"
	KindSkills       SingletonKind = "skills"
	KindAbout        SingletonKind = "about"
	KindNavigation   SingletonKind = "navigation"
	KindFooter       SingletonKind = "footer"
)

// KnownSingletonKinds lists every kind the content endpoints accept.
var KnownSingletonKinds = map[SingletonKind]bool{
	KindSiteSettings: true,
	KindPageContent:  true,
	KindSkills:       true,
	KindAbout:        true,
	KindNavigation:   true,
	KindFooter:       true,
}

// SingletonDocument holds one opaque JSON blob per kind. The unique index on
// Kind plus an ON CONFLICT upsert guarantees at most one row per kind, even
// under concurrent writes.
type SingletonDocument struct {
	BaseModel
	Kind SingletonKind  `gorm:"type:varchar(32);uniqueIndex;not null" json:"kind"`
	Data datatypes.JSON `json:"data"`
}

// AnalyticsSettings is the one singleton with typed columns. A fixed Key with
// a unique index gives it the same one-row guarantee.
type AnalyticsSettings struct {
	BaseModel
	Key           string `gorm:"type:varchar(16);uniqueIndex;default:'default'" json:"-"`
	Provider      string `json:"provider"`
	MeasurementID string `json:"measurementId"`
	Enabled       bool   `gorm:"default:false" json:"enabled"`
}
