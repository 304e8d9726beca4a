package controllers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jridouane/vite-gourmand/config"
	"github.com/jridouane/vite-gourmand/models"
	"github.com/jridouane/vite-gourmand/repository"
	"github.com/jridouane/vite-gourmand/utils"
	"gorm.io/gorm"
)

const maxImageSize = 5 << 20 // 5MB

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type MenuImageController struct {
	DB   *gorm.DB
	Repo *repository.MenuRepository
}

func NewMenuImageController(db *gorm.DB) *MenuImageController {
	return &MenuImageController{DB: db, Repo: repository.NewMenuRepository(db)}
}

func (ic *MenuImageController) Index(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	menu, err := ic.Repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": "Menu introuvable"})
		return
	}

	c.HTML(http.StatusOK, "admin_menu_images.html", gin.H{
		"Menu":   menu,
		"Images": menu.Images,
	})
}

// New uploads an image for a menu. GET over AJAX returns the modal form,
// POST stores the file then the row. The file move and the row write are a
// best-effort sequence, not an atomic pair.
func (ic *MenuImageController) New(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var menu models.Menu
	if err := ic.DB.First(&menu, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": "Menu introuvable"})
		return
	}

	action := fmt.Sprintf("/admin/menus/%d/images/new", menu.ID)

	if c.Request.Method == http.MethodGet {
		if utils.IsAjax(c) {
			respondFormFragment(c, "menu_image_form.html", gin.H{
				"Action": action,
				"Menu":   &menu,
			})
			return
		}
		c.Redirect(http.StatusFound, fmt.Sprintf("/admin/menus/%d/images", menu.ID))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		ic.invalid(c, action, &menu, "L'image est obligatoire.")
		return
	}
	if msg := checkImageFile(file); msg != "" {
		ic.invalid(c, action, &menu, msg)
		return
	}

	uploadDir := config.UploadDir()
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	safeName := fmt.Sprintf("menu_%d%s", time.Now().UnixNano(), strings.ToLower(filepath.Ext(file.Filename)))
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, safeName)); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	position, _ := strconv.Atoi(c.PostForm("position"))
	img := models.MenuImage{
		MenuID:    menu.ID,
		ImagePath: "uploads/menus/" + safeName,
		AltText:   strings.TrimSpace(c.PostForm("alt_text")),
		Position:  position,
		CreatedAt: time.Now(),
	}

	if err := ic.DB.Create(&img).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// cover flag last, through the transaction that un-flags the siblings
	if c.PostForm("is_cover") != "" {
		if err := ic.Repo.SetCover(&img); err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	if utils.IsAjax(c) {
		respondAdminSuccess(c, "Image ajoutée")
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/menus/%d/images", menu.ID))
}

func (ic *MenuImageController) Delete(c *gin.Context) {
	imgID, _ := strconv.Atoi(c.Param("img_id"))

	var img models.MenuImage
	if err := ic.DB.First(&img, imgID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": "Image introuvable"})
		return
	}

	if !validDeleteToken(c, fmt.Sprintf("delete_menu_image_%d", img.ID)) {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "message": "Token CSRF invalide"})
		return
	}

	// best-effort removal of the file itself
	if img.ImagePath != "" {
		name := filepath.Base(img.ImagePath)
		if err := os.Remove(filepath.Join(config.UploadDir(), name)); err != nil && !os.IsNotExist(err) {
			utils.ErrorLogger.Printf("could not remove image file %s: %v", name, err)
		}
	}

	if err := ic.DB.Delete(&img).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	respondAdminSuccess(c, "Image supprimée")
}

// SetCover flags an image as the cover of its menu; every sibling loses the
// flag in the same transaction.
func (ic *MenuImageController) SetCover(c *gin.Context) {
	imgID, _ := strconv.Atoi(c.Param("img_id"))

	var img models.MenuImage
	if err := ic.DB.First(&img, imgID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": "Image introuvable"})
		return
	}

	if err := ic.Repo.SetCover(&img); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	respondAdminSuccess(c, "Couverture mise à jour")
}

func checkImageFile(file *multipart.FileHeader) string {
	if file.Size > maxImageSize {
		return "L'image dépasse 5 Mo."
	}
	if !allowedImageExt[strings.ToLower(filepath.Ext(file.Filename))] {
		return "Formats acceptés : JPG / PNG / WEBP."
	}
	return ""
}

func (ic *MenuImageController) invalid(c *gin.Context, action string, menu *models.Menu, msg string) {
	if utils.IsAjax(c) {
		respondInvalidForm(c, "menu_image_form.html", gin.H{
			"Action": action,
			"Menu":   menu,
			"Error":  msg,
		})
		return
	}
	utils.SetFlash(c, "danger", msg)
	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/menus/%d/images", menu.ID))
}
