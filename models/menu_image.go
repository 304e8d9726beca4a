package models

import "time"

// DefaultCoverPath is served when a menu has no usable cover image.
const DefaultCoverPath = "uploads/menus/menu.png"

type MenuImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MenuID    uint      `gorm:"not null;index" json:"menu_id"`
	ImagePath string    `gorm:"type:varchar(255);not null" json:"image_path"`
	AltText   string    `gorm:"type:varchar(255)" json:"alt_text"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	IsCover   bool      `gorm:"not null;default:false" json:"is_cover"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// SelectCoverPaths picks the cover and side image paths for the detail page.
// Cover is the first image flagged as cover, side is the first image not
// flagged as cover. The two scans are independent: when the cover sits in
// the middle of the list, the side image is still the first non-cover one
// by stored order.
func SelectCoverPaths(images []MenuImage) (cover string, side string) {
	cover = DefaultCoverPath
	side = DefaultCoverPath

	for _, img := range images {
		if img.IsCover {
			if img.ImagePath != "" {
				cover = img.ImagePath
			}
			break
		}
	}

	for _, img := range images {
		if !img.IsCover {
			if img.ImagePath != "" {
				side = img.ImagePath
			} else {
				side = cover
			}
			return cover, side
		}
	}

	// no non-cover image: fall back to the cover
	side = cover
	return cover, side
}
