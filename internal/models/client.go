package models

// Client is a testimonial entry, not a customer account. ClientName is the
// person quoted in the testimonial; Name is the company.
type Client struct {
	BaseModel
	Name        string `json:"name"`
	LogoURL     string `gorm:"size:500" json:"logoUrl"`
	Project     string `json:"project"`
	Category    string `json:"category"`
	Description string `gorm:"type:text" json:"description"`
	Testimonial string `gorm:"type:text" json:"testimonial"`
	ClientName  string `json:"clientName"`
	Year        string `json:"year"`
	Rating      int    `gorm:"default:5" json:"rating"`
	Featured    bool   `gorm:"default:false;index" json:"featured"`
	Order       int    `gorm:"column:order_index;default:0" json:"order"`
}
