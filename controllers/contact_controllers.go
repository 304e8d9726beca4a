package controllers

import (
	"net/http"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/jridouane/vite-gourmand/models"
	"github.com/jridouane/vite-gourmand/services"
	"github.com/jridouane/vite-gourmand/utils"
	"gorm.io/gorm"
)

const contactCSRFIntention = "contact_message"

type ContactController struct {
	DB     *gorm.DB
	Mailer services.Mailer
}

func NewContactController(db *gorm.DB, mailer services.Mailer) *ContactController {
	return &ContactController{DB: db, Mailer: mailer}
}

// Show renders the contact form.
func (cc *ContactController) Show(c *gin.Context) {
	level, message, hasFlash := utils.PopFlash(c)
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"CSRFToken":    utils.CSRFToken(contactCSRFIntention),
		"FlashLevel":   level,
		"FlashMessage": message,
		"HasFlash":     hasFlash,
	})
}

// Submit persists the message, then sends the notification email. A mail
// failure keeps the stored row and reports the partial success explicitly.
func (cc *ContactController) Submit(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	message := strings.TrimSpace(c.PostForm("message"))
	email := strings.TrimSpace(c.PostForm("email"))
	token := c.PostForm("_token")

	if !utils.ValidCSRFToken(contactCSRFIntention, token) {
		cc.fail(c, "Token invalide. Recharge la page.")
		return
	}

	if title == "" || utf8.RuneCountInString(title) > 150 {
		cc.fail(c, "Le titre est obligatoire (150 caractères max).")
		return
	}
	if message == "" {
		cc.fail(c, "Le message est obligatoire.")
		return
	}
	if _, err := mail.ParseAddress(email); email == "" || err != nil {
		cc.fail(c, "Email invalide.")
		return
	}

	contact := models.ContactMessage{
		Title:     title,
		Message:   message,
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := cc.DB.Create(&contact).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := cc.Mailer.SendContactNotification(&contact); err != nil {
		// the row is already stored; tell the user about the partial success
		utils.ErrorLogger.Printf("contact notification mail failed: %v", err)
		cc.fail(c, "Message enregistré mais email non envoyé.")
		return
	}

	if utils.IsAjax(c) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Message envoyé"})
		return
	}

	utils.SetFlash(c, "success", "Message envoyé")
	c.Redirect(http.StatusFound, "/contact")
}

func (cc *ContactController) fail(c *gin.Context, msg string) {
	if utils.IsAjax(c) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": msg})
		return
	}
	utils.SetFlash(c, "danger", msg)
	c.Redirect(http.StatusFound, "/contact")
}
