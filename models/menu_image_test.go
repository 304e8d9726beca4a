package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectCoverPathsEmpty(t *testing.T) {
	cover, side := SelectCoverPaths(nil)
	assert.Equal(t, DefaultCoverPath, cover)
	assert.Equal(t, DefaultCoverPath, side)
}

func TestSelectCoverPathsNoCoverFlag(t *testing.T) {
	images := []MenuImage{
		{ImagePath: "uploads/menus/a.jpg", Position: 1},
		{ImagePath: "uploads/menus/b.jpg", Position: 2},
	}

	cover, side := SelectCoverPaths(images)
	assert.Equal(t, DefaultCoverPath, cover)
	assert.Equal(t, "uploads/menus/a.jpg", side)
}

func TestSelectCoverPathsCoverSecond(t *testing.T) {
	images := []MenuImage{
		{ImagePath: "uploads/menus/a.jpg", Position: 1},
		{ImagePath: "uploads/menus/b.jpg", Position: 2, IsCover: true},
	}

	cover, side := SelectCoverPaths(images)
	assert.Equal(t, "uploads/menus/b.jpg", cover)
	assert.Equal(t, "uploads/menus/a.jpg", side)
}

func TestSelectCoverPathsOnlyCover(t *testing.T) {
	images := []MenuImage{
		{ImagePath: "uploads/menus/a.jpg", IsCover: true},
	}

	cover, side := SelectCoverPaths(images)
	assert.Equal(t, "uploads/menus/a.jpg", cover)
	assert.Equal(t, "uploads/menus/a.jpg", side)
}

func TestSelectCoverPathsEmptyCoverPathFallsBack(t *testing.T) {
	images := []MenuImage{
		{ImagePath: "", IsCover: true},
		{ImagePath: "uploads/menus/b.jpg"},
	}

	cover, side := SelectCoverPaths(images)
	assert.Equal(t, DefaultCoverPath, cover)
	assert.Equal(t, "uploads/menus/b.jpg", side)
}

func TestDishByType(t *testing.T) {
	menu := Menu{Dishes: []Dish{
		{ID: 1, Name: "Velouté", Type: DishTypeEntree},
		{ID: 2, Name: "Boeuf", Type: DishTypePlat},
	}}

	entree := menu.DishByType(DishTypeEntree)
	assert.NotNil(t, entree)
	assert.Equal(t, "Velouté", entree.Name)
	assert.Nil(t, menu.DishByType(DishTypeDessert))
}
