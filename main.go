package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jridouane/vite-gourmand/config"
	"github.com/jridouane/vite-gourmand/database"
	"github.com/jridouane/vite-gourmand/models"
	"github.com/jridouane/vite-gourmand/router"
	"github.com/jridouane/vite-gourmand/services"
	"github.com/jridouane/vite-gourmand/utils"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if err := utils.InitTemplates("templates/*.html"); err != nil {
		utils.ErrorLogger.Fatalf("Failed to parse templates: %v", err)
	}

	if os.Getenv("SEED_DB") == "1" {
		if err := database.Seed(db); err != nil {
			utils.ErrorLogger.Fatalf("Failed to seed database: %v", err)
		}
	}

	mailer := services.NewSMTPMailerFromEnv()

	r := router.SetupRouter(db, mailer)
	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Menu{},
		&models.MenuImage{},
		&models.Dish{},
		&models.OpeningHour{},
		&models.ContactMessage{},
		&models.Allergen{},
		&models.Diet{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
