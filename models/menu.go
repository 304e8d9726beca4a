package models

import "time"

type Menu struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"type:varchar(180);not null" json:"title"`
	ThemeLabel  *string `gorm:"type:varchar(100)" json:"theme_label,omitempty"`
	Description string  `gorm:"type:text" json:"description"`
	Conditions  string  `gorm:"type:text" json:"conditions"`
	MinPeople   int     `gorm:"not null;default:1" json:"min_people"`
	MinPrice    float64 `gorm:"type:decimal(10,2);not null" json:"min_price"`
	// nil means unlimited stock
	Stock     *int        `json:"stock,omitempty"`
	// no column default: a default would silently re-activate rows created
	// with the flag unchecked (gorm omits zero values from the INSERT)
	IsActive  bool        `gorm:"not null" json:"is_active"`
	CreatedAt time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time   `gorm:"not null" json:"updated_at"`
	Images    []MenuImage `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"images"`
	Dishes    []Dish      `gorm:"many2many:menu_dishes" json:"dishes"`
}

// DishByType returns the dish filling the given course slot, or nil.
// A menu holds at most one dish per course type; that rule lives in the
// admin controller, not in the schema.
func (m *Menu) DishByType(dishType string) *Dish {
	for i := range m.Dishes {
		if m.Dishes[i].Type == dishType {
			return &m.Dishes[i]
		}
	}
	return nil
}
