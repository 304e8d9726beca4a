package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jridouane/vite-gourmand/models"
	"github.com/jridouane/vite-gourmand/services"
	"github.com/jridouane/vite-gourmand/utils"
	"gorm.io/gorm"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

func (pc *ProfileController) currentUser(c *gin.Context) (*models.User, error) {
	userIDValue, exists := c.Get("user_id")
	if !exists {
		return nil, errors.New("user id not found in context")
	}
	userID, ok := userIDValue.(uint)
	if !ok {
		return nil, errors.New("invalid user id in context")
	}

	var user models.User
	if err := pc.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// Index renders the profile editor.
func (pc *ProfileController) Index(c *gin.Context) {
	user, err := pc.currentUser(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{"User": user})
}

// UpdateField applies a single {field, value} patch to the profile. Only
// AJAX requests are accepted; the field must be on the allow-list and the
// patched entity must still validate as a whole.
func (pc *ProfileController) UpdateField(c *gin.Context) {
	if !utils.IsAjax(c) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "Requête invalide"})
		return
	}

	user, err := pc.currentUser(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var body struct {
		Field string      `json:"field"`
		Value interface{} `json:"value"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "Requête invalide"})
		return
	}

	value, err := services.UpdateProfileField(pc.DB, user, body.Field, body.Value)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrFieldNotAllowed):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "Champ non autorisé"})
		case errors.Is(err, services.ErrInvalidValue):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "Valeur invalide"})
		case errors.As(err, &vErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "message": vErr.Message})
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Enregistré",
		"field":   body.Field,
		"value":   value,
	})
}
