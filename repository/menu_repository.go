package repository

import (
	"strconv"

	"github.com/jridouane/vite-gourmand/models"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// MenuFilter carries the optional search parameters exactly as they arrive
// in the query string. An empty string means the filter is absent.
type MenuFilter struct {
	PriceMax      string
	PriceMin      string
	PriceMaxRange string
	Theme         string
	MinPeople     string
}

// Apply adds one conjunctive clause per present parameter, on top of the
// is_active restriction. PriceMin and PriceMaxRange are applied
// independently; nothing checks that the range is coherent.
func (f MenuFilter) Apply(q *gorm.DB) *gorm.DB {
	q = q.Where("is_active = ?", true)

	if f.PriceMax != "" {
		q = q.Where("min_price <= ?", toFloat(f.PriceMax))
	}
	if f.PriceMin != "" {
		q = q.Where("min_price >= ?", toFloat(f.PriceMin))
	}
	if f.PriceMaxRange != "" {
		q = q.Where("min_price <= ?", toFloat(f.PriceMaxRange))
	}
	if f.Theme != "" {
		q = q.Where("theme_label = ?", f.Theme)
	}
	if f.MinPeople != "" {
		// the menu's own minimum must not exceed what the customer asked
		// for; historical comparison direction, kept as-is
		q = q.Where("min_people <= ?", toInt(f.MinPeople))
	}

	return q
}

// Loose casts: a malformed number filters like zero instead of failing the
// whole search.
func toFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func toInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// Search returns the active menus matching the filter, newest first.
func (r *MenuRepository) Search(filter MenuFilter) ([]models.Menu, error) {
	var menus []models.Menu
	err := filter.Apply(r.DB.Model(&models.Menu{})).
		Order("id DESC").
		Find(&menus).Error
	return menus, err
}

// FindActive returns every active menu, newest first.
func (r *MenuRepository) FindActive() ([]models.Menu, error) {
	return r.Search(MenuFilter{})
}

// DistinctThemes feeds the theme select on the public listing page.
func (r *MenuRepository) DistinctThemes() ([]string, error) {
	var themes []string
	err := r.DB.Model(&models.Menu{}).
		Where("is_active = ?", true).
		Where("theme_label IS NOT NULL").
		Distinct("theme_label").
		Order("theme_label ASC").
		Pluck("theme_label", &themes).Error
	return themes, err
}

// FindByID loads a menu with its images in display order and its dishes.
func (r *MenuRepository) FindByID(id uint) (*models.Menu, error) {
	var menu models.Menu
	err := r.DB.
		Preload("Images", func(q *gorm.DB) *gorm.DB {
			return q.Order("position ASC, id ASC")
		}).
		Preload("Dishes").
		First(&menu, id).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// FindAll returns every menu for the back-office listing, newest first.
func (r *MenuRepository) FindAll() ([]models.Menu, error) {
	var menus []models.Menu
	err := r.DB.
		Preload("Images", func(q *gorm.DB) *gorm.DB {
			return q.Order("position ASC, id ASC")
		}).
		Order("id DESC").
		Find(&menus).Error
	return menus, err
}

// SetCover flags one image as the menu cover. Clearing the siblings and
// setting the target run in a single transaction so two concurrent calls
// cannot leave the menu with zero or two covers.
func (r *MenuRepository) SetCover(img *models.MenuImage) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.MenuImage{}).
			Where("menu_id = ? AND id <> ?", img.MenuID, img.ID).
			Update("is_cover", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.MenuImage{}).
			Where("id = ?", img.ID).
			Update("is_cover", true).Error
	})
}
