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

// ReferenceController manages the two named reference lists (allergens and
// diets). Both share the exact same shape, so the handlers are built per
// resource.
type ReferenceController struct {
	DB *gorm.DB
}

func NewReferenceController(db *gorm.DB) *ReferenceController {
	return &ReferenceController{DB: db}
}

type referenceItem struct {
	ID       uint
	Name     string
	IsActive bool
}

func (rc *ReferenceController) newModel(resource string) interface{} {
	if resource == "allergen" {
		return &models.Allergen{}
	}
	return &models.Diet{}
}

func (rc *ReferenceController) Index(resource, basePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []referenceItem
		if err := rc.DB.Model(rc.newModel(resource)).Order("id DESC").Find(&items).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}

		c.HTML(http.StatusOK, "admin_reference_index.html", gin.H{
			"Resource": resource,
			"BasePath": basePath,
			"Items":    items,
		})
	}
}

func (rc *ReferenceController) New(resource, basePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			if utils.IsAjax(c) {
				respondFormFragment(c, "reference_form.html", gin.H{
					"Action": basePath + "/new",
					"Item":   &referenceItem{IsActive: true},
				})
				return
			}
			c.Redirect(http.StatusFound, basePath)
			return
		}

		name := strings.TrimSpace(c.PostForm("name"))
		if name == "" {
			rc.invalid(c, basePath+"/new", basePath, &referenceItem{}, "Le nom est obligatoire.")
			return
		}

		isActive := c.PostForm("is_active") != ""
		now := time.Now()

		var err error
		if resource == "allergen" {
			err = rc.DB.Create(&models.Allergen{Name: name, IsActive: isActive, CreatedAt: now}).Error
		} else {
			err = rc.DB.Create(&models.Diet{Name: name, IsActive: isActive, CreatedAt: now}).Error
		}
		if err != nil {
			rc.invalid(c, basePath+"/new", basePath, &referenceItem{Name: name, IsActive: isActive}, "Ce nom existe déjà.")
			return
		}

		if utils.IsAjax(c) {
			respondAdminSuccess(c, "Élément ajouté")
			return
		}
		c.Redirect(http.StatusFound, basePath)
	}
}

func (rc *ReferenceController) Edit(resource, basePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var item referenceItem
		if err := rc.DB.Model(rc.newModel(resource)).First(&item, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": "Élément introuvable"})
			return
		}

		action := fmt.Sprintf("%s/%d/edit", basePath, item.ID)

		if c.Request.Method == http.MethodGet {
			if utils.IsAjax(c) {
				respondFormFragment(c, "reference_form.html", gin.H{"Action": action, "Item": &item})
				return
			}
			c.Redirect(http.StatusFound, basePath)
			return
		}

		name := strings.TrimSpace(c.PostForm("name"))
		if name == "" {
			rc.invalid(c, action, basePath, &item, "Le nom est obligatoire.")
			return
		}

		updates := map[string]interface{}{
			"name":      name,
			"is_active": c.PostForm("is_active") != "",
		}
		if err := rc.DB.Model(rc.newModel(resource)).Where("id = ?", item.ID).Updates(updates).Error; err != nil {
			rc.invalid(c, action, basePath, &item, "Ce nom existe déjà.")
			return
		}

		if utils.IsAjax(c) {
			respondAdminSuccess(c, "Élément modifié")
			return
		}
		c.Redirect(http.StatusFound, basePath)
	}
}

func (rc *ReferenceController) Delete(resource, basePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var item referenceItem
		if err := rc.DB.Model(rc.newModel(resource)).First(&item, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": "Élément introuvable"})
			return
		}

		if !validDeleteToken(c, fmt.Sprintf("delete_%s_%d", resource, item.ID)) {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "message": "Token CSRF invalide"})
			return
		}

		if err := rc.DB.Where("id = ?", item.ID).Delete(rc.newModel(resource)).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}

		if utils.IsAjax(c) {
			respondAdminSuccess(c, "Élément supprimé")
			return
		}
		utils.SetFlash(c, "success", "Élément supprimé")
		c.Redirect(http.StatusFound, basePath)
	}
}

func (rc *ReferenceController) invalid(c *gin.Context, action, basePath string, item *referenceItem, msg string) {
	if utils.IsAjax(c) {
		respondInvalidForm(c, "reference_form.html", gin.H{
			"Action": action,
			"Item":   item,
			"Error":  msg,
		})
		return
	}
	utils.SetFlash(c, "danger", msg)
	c.Redirect(http.StatusFound, basePath)
}
