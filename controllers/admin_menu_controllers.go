package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jridouane/vite-gourmand/models"
	"github.com/jridouane/vite-gourmand/repository"
	"github.com/jridouane/vite-gourmand/utils"
	"gorm.io/gorm"
)

type AdminMenuController struct {
	DB   *gorm.DB
	Repo *repository.MenuRepository
}

func NewAdminMenuController(db *gorm.DB) *AdminMenuController {
	return &AdminMenuController{DB: db, Repo: repository.NewMenuRepository(db)}
}

func (mc *AdminMenuController) Index(c *gin.Context) {
	menus, err := mc.Repo.FindAll()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "admin_menu_index.html", gin.H{"Menus": menus})
}

func (mc *AdminMenuController) New(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		if utils.IsAjax(c) {
			mc.renderForm(c, "/admin/menus/new", &models.Menu{IsActive: true, MinPeople: 1}, "")
			return
		}
		c.Redirect(http.StatusFound, "/admin/menus")
		return
	}

	now := time.Now()
	menu := models.Menu{IsActive: true, CreatedAt: now, UpdatedAt: now}
	if msg := bindMenuForm(c, &menu); msg != "" {
		mc.invalidForm(c, "/admin/menus/new", &menu, msg)
		return
	}

	if err := mc.DB.Create(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := mc.syncDishSlots(c, &menu); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if utils.IsAjax(c) {
		respondAdminSuccess(c, "Menu ajouté")
		return
	}
	c.Redirect(http.StatusFound, "/admin/menus")
}

func (mc *AdminMenuController) Edit(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	menu, err := mc.Repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": "Menu introuvable"})
		return
	}

	action := fmt.Sprintf("/admin/menus/%d/edit", menu.ID)

	if c.Request.Method == http.MethodGet {
		if utils.IsAjax(c) {
			mc.renderForm(c, action, menu, "")
			return
		}
		c.Redirect(http.StatusFound, "/admin/menus")
		return
	}

	if msg := bindMenuForm(c, menu); msg != "" {
		mc.invalidForm(c, action, menu, msg)
		return
	}
	menu.UpdatedAt = time.Now()

	if err := mc.DB.Save(menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := mc.syncDishSlots(c, menu); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if utils.IsAjax(c) {
		respondAdminSuccess(c, "Menu modifié")
		return
	}
	c.Redirect(http.StatusFound, "/admin/menus")
}

func (mc *AdminMenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": "Menu introuvable"})
		return
	}

	if !validDeleteToken(c, fmt.Sprintf("delete_menu_%d", menu.ID)) {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "message": "Token CSRF invalide"})
		return
	}

	// images go with the menu (cascade)
	if err := mc.DB.Select("Images").Delete(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if utils.IsAjax(c) {
		respondAdminSuccess(c, "Menu supprimé")
		return
	}
	utils.SetFlash(c, "success", "Menu supprimé")
	c.Redirect(http.StatusFound, "/admin/menus")
}

func (mc *AdminMenuController) renderForm(c *gin.Context, action string, menu *models.Menu, errMsg string) {
	data, err := mc.formData(action, menu, errMsg)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	respondFormFragment(c, "menu_form.html", data)
}

func (mc *AdminMenuController) invalidForm(c *gin.Context, action string, menu *models.Menu, errMsg string) {
	if !utils.IsAjax(c) {
		utils.SetFlash(c, "danger", errMsg)
		c.Redirect(http.StatusFound, "/admin/menus")
		return
	}

	data, err := mc.formData(action, menu, errMsg)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	respondInvalidForm(c, "menu_form.html", data)
}

// formData loads the active dishes so the form can offer one select per
// course slot, pre-filled from the menu's current dishes.
func (mc *AdminMenuController) formData(action string, menu *models.Menu, errMsg string) (gin.H, error) {
	var dishes []models.Dish
	if err := mc.DB.Where("is_active = ?", true).Order("name ASC").Find(&dishes).Error; err != nil {
		return nil, err
	}

	byType := map[string][]models.Dish{}
	for _, d := range dishes {
		byType[d.Type] = append(byType[d.Type], d)
	}

	return gin.H{
		"Action":        action,
		"Menu":          menu,
		"Error":         errMsg,
		"EntreeDishes":  byType[models.DishTypeEntree],
		"PlatDishes":    byType[models.DishTypePlat],
		"DessertDishes": byType[models.DishTypeDessert],
		"Entree":        menu.DishByType(models.DishTypeEntree),
		"Plat":          menu.DishByType(models.DishTypePlat),
		"Dessert":       menu.DishByType(models.DishTypeDessert),
	}, nil
}

func bindMenuForm(c *gin.Context, menu *models.Menu) string {
	menu.Title = strings.TrimSpace(c.PostForm("title"))
	menu.Description = strings.TrimSpace(c.PostForm("description"))
	menu.Conditions = strings.TrimSpace(c.PostForm("conditions"))
	menu.IsActive = c.PostForm("is_active") != ""

	if theme := strings.TrimSpace(c.PostForm("theme_label")); theme != "" {
		menu.ThemeLabel = &theme
	} else {
		menu.ThemeLabel = nil
	}

	if menu.Title == "" {
		return "Le titre est obligatoire."
	}

	minPeople, err := strconv.Atoi(c.PostForm("min_people"))
	if err != nil || minPeople < 1 {
		return "Nombre minimum de personnes invalide."
	}
	menu.MinPeople = minPeople

	minPrice, err := strconv.ParseFloat(c.PostForm("min_price"), 64)
	if err != nil || minPrice < 0 {
		return "Prix minimum invalide."
	}
	menu.MinPrice = minPrice

	if stockStr := strings.TrimSpace(c.PostForm("stock")); stockStr != "" {
		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			return "Stock invalide."
		}
		menu.Stock = &stock
	} else {
		menu.Stock = nil
	}

	return ""
}

// syncDishSlots rebuilds the menu/dish association from the three optional
// course selects. At most one dish per course type survives: a dish whose
// type does not match its slot is dropped, so a crafted POST cannot stack
// two dishes of the same course on one menu.
func (mc *AdminMenuController) syncDishSlots(c *gin.Context, menu *models.Menu) error {
	slots := []struct {
		field    string
		dishType string
	}{
		{"entree_dish", models.DishTypeEntree},
		{"plat_dish", models.DishTypePlat},
		{"dessert_dish", models.DishTypeDessert},
	}

	var dishes []models.Dish
	for _, slot := range slots {
		idStr := strings.TrimSpace(c.PostForm(slot.field))
		if idStr == "" {
			continue
		}
		id, err := strconv.Atoi(idStr)
		if err != nil {
			continue
		}

		var dish models.Dish
		if err := mc.DB.First(&dish, id).Error; err != nil {
			continue
		}
		if dish.Type != slot.dishType {
			utils.InfoLogger.Printf("ignoring dish %d in %s slot: type %s", dish.ID, slot.field, dish.Type)
			continue
		}
		dishes = append(dishes, dish)
	}

	return mc.DB.Model(menu).Association("Dishes").Replace(dishes)
}
