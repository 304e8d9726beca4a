package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/jridouane/vite-gourmand/models"
	"github.com/jridouane/vite-gourmand/utils"
)

func setupAdminMenuRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	if err := utils.InitTemplates("../templates/*.html"); err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	r.SetHTMLTemplate(utils.Templates)

	mc := NewAdminMenuController(db)
	r.GET("/admin/menus/new", mc.New)
	r.POST("/admin/menus/new", mc.New)
	r.GET("/admin/menus/:id/edit", mc.Edit)
	r.POST("/admin/menus/:id/edit", mc.Edit)
	r.POST("/admin/menus/:id/delete", mc.Delete)
	return r
}

func menuForm() url.Values {
	return url.Values{
		"title":       {"Menu Réveillon"},
		"theme_label": {"Noël"},
		"description": {"Un menu de fête"},
		"min_people":  {"8"},
		"min_price":   {"65.50"},
		"is_active":   {"1"},
	}
}

func TestAdminMenuCreate(t *testing.T) {
	db := setupTestDB(t, &models.Menu{}, &models.MenuImage{}, &models.Dish{})
	r := setupAdminMenuRouter(t, db)

	w := postAdminForm(r, "/admin/menus/new", menuForm())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Menu ajouté")

	var menu models.Menu
	assert.NoError(t, db.First(&menu, "title = ?", "Menu Réveillon").Error)
	assert.NotNil(t, menu.ThemeLabel)
	assert.Equal(t, "Noël", *menu.ThemeLabel)
	assert.Equal(t, 8, menu.MinPeople)
	assert.Equal(t, 65.50, menu.MinPrice)
	assert.Nil(t, menu.Stock)
}

func TestAdminMenuCreateWithDishSlots(t *testing.T) {
	db := setupTestDB(t, &models.Menu{}, &models.MenuImage{}, &models.Dish{})
	r := setupAdminMenuRouter(t, db)

	entree := models.Dish{Name: "Foie gras", Type: models.DishTypeEntree, IsActive: true}
	plat := models.Dish{Name: "Chapon rôti", Type: models.DishTypePlat, IsActive: true}
	assert.NoError(t, db.Create(&entree).Error)
	assert.NoError(t, db.Create(&plat).Error)

	form := menuForm()
	form.Set("entree_dish", strconv.Itoa(int(entree.ID)))
	form.Set("plat_dish", strconv.Itoa(int(plat.ID)))

	w := postAdminForm(r, "/admin/menus/new", form)
	assert.Equal(t, http.StatusOK, w.Code)

	var menu models.Menu
	assert.NoError(t, db.Preload("Dishes").First(&menu, "title = ?", "Menu Réveillon").Error)
	assert.Len(t, menu.Dishes, 2)
	assert.NotNil(t, menu.DishByType(models.DishTypeEntree))
	assert.NotNil(t, menu.DishByType(models.DishTypePlat))
	assert.Nil(t, menu.DishByType(models.DishTypeDessert))
}

func TestAdminMenuCreateIgnoresMismatchedSlot(t *testing.T) {
	db := setupTestDB(t, &models.Menu{}, &models.MenuImage{}, &models.Dish{})
	r := setupAdminMenuRouter(t, db)

	plat := models.Dish{Name: "Chapon rôti", Type: models.DishTypePlat, IsActive: true}
	autrePlat := models.Dish{Name: "Dos de cabillaud", Type: models.DishTypePlat, IsActive: true}
	assert.NoError(t, db.Create(&plat).Error)
	assert.NoError(t, db.Create(&autrePlat).Error)

	// a plat id smuggled into the entrée slot must not produce two plats
	form := menuForm()
	form.Set("entree_dish", strconv.Itoa(int(plat.ID)))
	form.Set("plat_dish", strconv.Itoa(int(autrePlat.ID)))

	w := postAdminForm(r, "/admin/menus/new", form)
	assert.Equal(t, http.StatusOK, w.Code)

	var menu models.Menu
	assert.NoError(t, db.Preload("Dishes").First(&menu, "title = ?", "Menu Réveillon").Error)
	assert.Len(t, menu.Dishes, 1)
	assert.Equal(t, autrePlat.ID, menu.Dishes[0].ID)
	assert.Nil(t, menu.DishByType(models.DishTypeEntree))
}

func TestAdminMenuCreateInactiveStaysInactive(t *testing.T) {
	db := setupTestDB(t, &models.Menu{}, &models.MenuImage{}, &models.Dish{})
	r := setupAdminMenuRouter(t, db)

	form := menuForm()
	form.Del("is_active")

	w := postAdminForm(r, "/admin/menus/new", form)
	assert.Equal(t, http.StatusOK, w.Code)

	var menu models.Menu
	assert.NoError(t, db.First(&menu, "title = ?", "Menu Réveillon").Error)
	assert.False(t, menu.IsActive)
}

func TestAdminMenuCreateMissingTitleReturns422(t *testing.T) {
	db := setupTestDB(t, &models.Menu{}, &models.MenuImage{}, &models.Dish{})
	r := setupAdminMenuRouter(t, db)

	form := menuForm()
	form.Set("title", "  ")

	w := postAdminForm(r, "/admin/menus/new", form)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Ok   bool   `json:"ok"`
		HTML string `json:"html"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Ok)
	assert.Contains(t, resp.HTML, "Le titre est obligatoire.")

	var n int64
	assert.NoError(t, db.Model(&models.Menu{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

func TestAdminMenuEditReplacesDishSlot(t *testing.T) {
	db := setupTestDB(t, &models.Menu{}, &models.MenuImage{}, &models.Dish{})
	r := setupAdminMenuRouter(t, db)

	old := models.Dish{Name: "Velouté", Type: models.DishTypeEntree, IsActive: true}
	next := models.Dish{Name: "Foie gras", Type: models.DishTypeEntree, IsActive: true}
	assert.NoError(t, db.Create(&old).Error)
	assert.NoError(t, db.Create(&next).Error)

	menu := models.Menu{Title: "Menu Hiver", MinPeople: 4, MinPrice: 40, IsActive: true}
	assert.NoError(t, db.Create(&menu).Error)
	assert.NoError(t, db.Model(&menu).Association("Dishes").Replace([]models.Dish{old}))

	form := url.Values{
		"title":       {"Menu Hiver"},
		"min_people":  {"4"},
		"min_price":   {"40"},
		"is_active":   {"1"},
		"entree_dish": {strconv.Itoa(int(next.ID))},
	}
	w := postAdminForm(r, fmt.Sprintf("/admin/menus/%d/edit", menu.ID), form)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Menu modifié")

	var stored models.Menu
	assert.NoError(t, db.Preload("Dishes").First(&stored, menu.ID).Error)
	assert.Len(t, stored.Dishes, 1)
	assert.Equal(t, "Foie gras", stored.Dishes[0].Name)
}

func TestAdminMenuDeleteCascadesImages(t *testing.T) {
	db := setupTestDB(t, &models.Menu{}, &models.MenuImage{}, &models.Dish{})
	r := setupAdminMenuRouter(t, db)

	menu := models.Menu{Title: "Menu Jetable", MinPeople: 2, MinPrice: 30, IsActive: true}
	assert.NoError(t, db.Create(&menu).Error)
	img := models.MenuImage{MenuID: menu.ID, ImagePath: "uploads/menus/x.jpg"}
	assert.NoError(t, db.Create(&img).Error)

	token := utils.CSRFToken(fmt.Sprintf("delete_menu_%d", menu.ID))
	w := postAdminForm(r, fmt.Sprintf("/admin/menus/%d/delete", menu.ID), url.Values{"_token": {token}})
	assert.Equal(t, http.StatusOK, w.Code)

	var menus, images int64
	assert.NoError(t, db.Model(&models.Menu{}).Count(&menus).Error)
	assert.NoError(t, db.Model(&models.MenuImage{}).Count(&images).Error)
	assert.Equal(t, int64(0), menus)
	assert.Equal(t, int64(0), images)
}
