package models

import (
	"strings"
	"time"
)

const (
	RoleUser     = "ROLE_USER"
	RoleEmployee = "ROLE_EMPLOYEE"
	RoleAdmin    = "ROLE_ADMIN"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"type:varchar(255);unique;not null" json:"email" validate:"required,email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	// comma-separated role names, e.g. "ROLE_USER,ROLE_ADMIN"
	Roles        string    `gorm:"type:varchar(255);not null;default:'ROLE_USER'" json:"roles"`
	FirstName    *string   `gorm:"type:varchar(100)" json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName     *string   `gorm:"type:varchar(100)" json:"last_name,omitempty" validate:"omitempty,max=100"`
	Phone        *string   `gorm:"type:varchar(20)" json:"phone,omitempty" validate:"omitempty,max=20"`
	AddressLine1 *string   `gorm:"type:varchar(255)" json:"address_line1,omitempty" validate:"omitempty,max=255"`
	AddressLine2 *string   `gorm:"type:varchar(255)" json:"address_line2,omitempty" validate:"omitempty,max=255"`
	PostalCode   *int      `json:"postal_code,omitempty" validate:"omitempty,gte=0"`
	City         *string   `gorm:"type:varchar(100)" json:"city,omitempty" validate:"omitempty,max=100"`
	Country      *string   `gorm:"type:varchar(100)" json:"country,omitempty" validate:"omitempty,max=100"`
	// no default:true here: gorm drops zero values from the INSERT, so a
	// column default would turn a deliberately disabled account active
	IsActive     bool      `gorm:"not null" json:"is_active"`
	IsVerified   bool      `gorm:"not null;default:false" json:"is_verified"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (u *User) RoleList() []string {
	if u.Roles == "" {
		return []string{RoleUser}
	}
	return strings.Split(u.Roles, ",")
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.RoleList() {
		if strings.TrimSpace(r) == role {
			return true
		}
	}
	return false
}
