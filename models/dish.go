package models

import "time"

// Course types. A menu references at most one dish per type.
const (
	DishTypeEntree  = "entree"
	DishTypePlat    = "plat"
	DishTypeDessert = "dessert"
)

type Dish struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(150);not null" json:"name"`
	Type        string    `gorm:"type:varchar(20);not null" json:"type"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func ValidDishType(t string) bool {
	switch t {
	case DishTypeEntree, DishTypePlat, DishTypeDessert:
		return true
	}
	return false
}
