package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jridouane/vite-gourmand/models"
	"github.com/jridouane/vite-gourmand/utils"
	"gorm.io/gorm"
)

type DishController struct {
	DB *gorm.DB
}

func NewDishController(db *gorm.DB) *DishController {
	return &DishController{DB: db}
}

func (dc *DishController) Index(c *gin.Context) {
	var dishes []models.Dish
	if err := dc.DB.Order("id DESC").Find(&dishes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "admin_dish_index.html", gin.H{"Dishes": dishes})
}

func (dc *DishController) New(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		if utils.IsAjax(c) {
			respondFormFragment(c, "dish_form.html", gin.H{
				"Action": "/admin/dishes/new",
				"Dish":   &models.Dish{IsActive: true},
			})
			return
		}
		c.Redirect(http.StatusFound, "/admin/dishes")
		return
	}

	dish := models.Dish{IsActive: true, CreatedAt: time.Now()}
	if msg := bindDishForm(c, &dish); msg != "" {
		dc.invalid(c, "/admin/dishes/new", &dish, msg)
		return
	}

	if err := dc.DB.Create(&dish).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if utils.IsAjax(c) {
		respondAdminSuccess(c, "Plat ajouté")
		return
	}
	c.Redirect(http.StatusFound, "/admin/dishes")
}

func (dc *DishController) Edit(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var dish models.Dish
	if err := dc.DB.First(&dish, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": "Plat introuvable"})
		return
	}

	action := fmt.Sprintf("/admin/dishes/%d/edit", dish.ID)

	if c.Request.Method == http.MethodGet {
		if utils.IsAjax(c) {
			respondFormFragment(c, "dish_form.html", gin.H{"Action": action, "Dish": &dish})
			return
		}
		c.Redirect(http.StatusFound, "/admin/dishes")
		return
	}

	if msg := bindDishForm(c, &dish); msg != "" {
		dc.invalid(c, action, &dish, msg)
		return
	}

	if err := dc.DB.Save(&dish).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if utils.IsAjax(c) {
		respondAdminSuccess(c, "Plat modifié")
		return
	}
	c.Redirect(http.StatusFound, "/admin/dishes")
}

func (dc *DishController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var dish models.Dish
	if err := dc.DB.First(&dish, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": "Plat introuvable"})
		return
	}

	if !validDeleteToken(c, fmt.Sprintf("delete_dish_%d", dish.ID)) {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "message": "Token CSRF invalide"})
		return
	}

	if err := dc.DB.Delete(&dish).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if utils.IsAjax(c) {
		respondAdminSuccess(c, "Plat supprimé")
		return
	}
	utils.SetFlash(c, "success", "Plat supprimé")
	c.Redirect(http.StatusFound, "/admin/dishes")
}

// bindDishForm fills the dish from the submitted form and returns a
// user-facing message when it does not validate.
func bindDishForm(c *gin.Context, dish *models.Dish) string {
	dish.Name = strings.TrimSpace(c.PostForm("name"))
	dish.Type = strings.TrimSpace(c.PostForm("type"))
	dish.Description = strings.TrimSpace(c.PostForm("description"))
	dish.IsActive = c.PostForm("is_active") != ""

	if dish.Name == "" {
		return "Le nom est obligatoire."
	}
	if !models.ValidDishType(dish.Type) {
		return "Type de plat invalide."
	}
	return ""
}

func (dc *DishController) invalid(c *gin.Context, action string, dish *models.Dish, msg string) {
	if utils.IsAjax(c) {
		respondInvalidForm(c, "dish_form.html", gin.H{
			"Action": action,
			"Dish":   dish,
			"Error":  msg,
		})
		return
	}
	utils.SetFlash(c, "danger", msg)
	c.Redirect(http.StatusFound, "/admin/dishes")
}
