package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jridouane/vite-gourmand/middlewares"
	"github.com/jridouane/vite-gourmand/models"
	"github.com/jridouane/vite-gourmand/utils"
)

func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	r := gin.New()
	uc := NewUserController(db)
	r.POST("/register", uc.Register)
	r.POST("/login", uc.Login)

	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware())
	authed.POST("/logout", uc.Logout)

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminRequired())
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func postJSON(r *gin.Engine, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t, &models.User{})
	r := setupUserRouter(db)

	w := postJSON(r, "/register", gin.H{
		"email":    "nouveau@example.com",
		"password": "motdepasse1",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	assert.NoError(t, db.First(&user, "email = ?", "nouveau@example.com").Error)
	assert.Equal(t, models.RoleUser, user.Roles)
	assert.NotEqual(t, "motdepasse1", user.Password)

	w = postJSON(r, "/login", gin.H{
		"email":    "nouveau@example.com",
		"password": "motdepasse1",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t, &models.User{})
	r := setupUserRouter(db)

	payload := gin.H{"email": "double@example.com", "password": "motdepasse1"}
	assert.Equal(t, http.StatusCreated, postJSON(r, "/register", payload, "").Code)
	assert.Equal(t, http.StatusConflict, postJSON(r, "/register", payload, "").Code)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t, &models.User{})
	r := setupUserRouter(db)

	hash, _ := bcrypt.GenerateFromPassword([]byte("bonmotdepasse"), bcrypt.DefaultCost)
	user := models.User{Email: "client@example.com", Password: string(hash), Roles: models.RoleUser, IsActive: true}
	assert.NoError(t, db.Create(&user).Error)

	w := postJSON(r, "/login", gin.H{"email": "client@example.com", "password": "mauvais"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginDisabledAccount(t *testing.T) {
	db := setupTestDB(t, &models.User{})
	r := setupUserRouter(db)

	hash, _ := bcrypt.GenerateFromPassword([]byte("bonmotdepasse"), bcrypt.DefaultCost)
	user := models.User{Email: "inactif@example.com", Password: string(hash), Roles: models.RoleUser, IsActive: false}
	assert.NoError(t, db.Create(&user).Error)

	w := postJSON(r, "/login", gin.H{"email": "inactif@example.com", "password": "bonmotdepasse"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	db := setupTestDB(t, &models.User{})
	r := setupUserRouter(db)

	token, err := utils.GenerateToken(42, []string{models.RoleUser})
	assert.NoError(t, err)

	w := postJSON(r, "/logout", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	// the revoked token no longer authenticates
	w = postJSON(r, "/logout", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminGateRejectsPlainUser(t *testing.T) {
	db := setupTestDB(t, &models.User{})
	r := setupUserRouter(db)

	userToken, err := utils.GenerateToken(1, []string{models.RoleUser})
	assert.NoError(t, err)
	adminToken, err := utils.GenerateToken(2, []string{models.RoleAdmin})
	assert.NoError(t, err)

	req, _ := http.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req, _ = http.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
