package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jridouane/vite-gourmand/models"
	"github.com/jridouane/vite-gourmand/utils"
)

type fakeMailer struct {
	sent []models.ContactMessage
	err  error
}

func (m *fakeMailer) SendContactNotification(msg *models.ContactMessage) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, *msg)
	return nil
}

func setupTestDB(t *testing.T, dst ...interface{}) *gorm.DB {
	dsn := fmt.Sprintf("file:ctrl_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(dst...); err != nil {
		t.Fatal(err)
	}
	return db
}

func setupContactRouter(db *gorm.DB, mailer *fakeMailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	r := gin.New()
	cc := NewContactController(db, mailer)
	r.GET("/contact", cc.Show)
	r.POST("/contact", cc.Submit)
	return r
}

func postContactForm(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func contactForm() url.Values {
	return url.Values{
		"title":   {"Demande de devis"},
		"message": {"Bonjour, je souhaite un devis pour 20 personnes."},
		"email":   {"client@example.com"},
		"_token":  {utils.CSRFToken("contact_message")},
	}
}

func contactCount(t *testing.T, db *gorm.DB) int64 {
	var n int64
	assert.NoError(t, db.Model(&models.ContactMessage{}).Count(&n).Error)
	return n
}

func TestContactSubmitSuccess(t *testing.T) {
	db := setupTestDB(t, &models.ContactMessage{})
	mailer := &fakeMailer{}
	r := setupContactRouter(db, mailer)

	w := postContactForm(r, contactForm())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
	assert.Equal(t, int64(1), contactCount(t, db))
	assert.Len(t, mailer.sent, 1)
	assert.Equal(t, "Demande de devis", mailer.sent[0].Title)
}

func TestContactSubmitTitleTooLong(t *testing.T) {
	db := setupTestDB(t, &models.ContactMessage{})
	r := setupContactRouter(db, &fakeMailer{})

	form := contactForm()
	form.Set("title", strings.Repeat("a", 151))

	w := postContactForm(r, form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(0), contactCount(t, db))
}

func TestContactSubmitMissingMessage(t *testing.T) {
	db := setupTestDB(t, &models.ContactMessage{})
	r := setupContactRouter(db, &fakeMailer{})

	form := contactForm()
	form.Set("message", "   ")

	w := postContactForm(r, form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(0), contactCount(t, db))
}

func TestContactSubmitInvalidEmail(t *testing.T) {
	db := setupTestDB(t, &models.ContactMessage{})
	r := setupContactRouter(db, &fakeMailer{})

	form := contactForm()
	form.Set("email", "not-an-email")

	w := postContactForm(r, form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(0), contactCount(t, db))
}

func TestContactSubmitBadCSRFToken(t *testing.T) {
	db := setupTestDB(t, &models.ContactMessage{})
	r := setupContactRouter(db, &fakeMailer{})

	form := contactForm()
	form.Set("_token", "forged")

	w := postContactForm(r, form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(0), contactCount(t, db))
}

func TestContactSubmitMailFailureKeepsRow(t *testing.T) {
	db := setupTestDB(t, &models.ContactMessage{})
	mailer := &fakeMailer{err: errors.New("smtp unreachable")}
	r := setupContactRouter(db, mailer)

	w := postContactForm(r, contactForm())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "enregistré mais email non envoyé")
	// partial success: the row stays
	assert.Equal(t, int64(1), contactCount(t, db))
}
