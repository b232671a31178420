package models

// Category constrains PortfolioItem.Category at the UI layer only.
// PortfolioItem.Category stays free text; no foreign key.
type Category struct {
	BaseModel
	Name        string `gorm:"uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	Order       int    `gorm:"column:order_index;default:0" json:"order"`
}
