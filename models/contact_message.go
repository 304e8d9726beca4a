package models

import "time"

// ContactMessage is write-once: created from the public contact form,
// never updated afterwards.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(150);not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
