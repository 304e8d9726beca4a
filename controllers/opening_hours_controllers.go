package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jridouane/vite-gourmand/models"
	"github.com/jridouane/vite-gourmand/utils"
	"gorm.io/gorm"
)

type OpeningHoursController struct {
	DB *gorm.DB
}

func NewOpeningHoursController(db *gorm.DB) *OpeningHoursController {
	return &OpeningHoursController{DB: db}
}

// List returns the week schedule, Monday first. Closed days carry null
// open/close times.
func (oc *OpeningHoursController) List(c *gin.Context) {
	var hours []models.OpeningHour
	if err := oc.DB.Order("day_of_week ASC").Find(&hours).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	items := make([]gin.H, 0, len(hours))
	for i := range hours {
		h := &hours[i]
		var open, close *string
		if !h.IsClosed {
			open = h.OpenTime
			close = h.CloseTime
		}
		items = append(items, gin.H{
			"day":    h.DayOfWeek,
			"label":  h.DayLabel(),
			"closed": h.IsClosed,
			"open":   open,
			"close":  close,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"items": items,
	})
}
