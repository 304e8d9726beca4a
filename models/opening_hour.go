package models

import (
	"fmt"
	"time"
)

type OpeningHour struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// 1 = Monday .. 7 = Sunday
	DayOfWeek int  `gorm:"not null" json:"day_of_week"`
	IsClosed  bool `gorm:"not null;default:false" json:"is_closed"`
	// "HH:MM", nil when the day is closed
	OpenTime  *string   `gorm:"type:varchar(5)" json:"open_time,omitempty"`
	CloseTime *string   `gorm:"type:varchar(5)" json:"close_time,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

var dayLabels = map[int]string{
	1: "Lundi",
	2: "Mardi",
	3: "Mercredi",
	4: "Jeudi",
	5: "Vendredi",
	6: "Samedi",
	7: "Dimanche",
}

// DayLabel returns the French label for the day of week.
func (h *OpeningHour) DayLabel() string {
	if label, ok := dayLabels[h.DayOfWeek]; ok {
		return label
	}
	return fmt.Sprintf("Jour %d", h.DayOfWeek)
}

func DayLabels() map[int]string {
	return dayLabels
}
