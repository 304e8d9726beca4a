package database

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jridouane/vite-gourmand/models"
	"github.com/jridouane/vite-gourmand/utils"
)

// Seed fills an empty database with a usable starting set: the admin and
// employee accounts, a full week of opening hours, the reference lists and a
// handful of menus with their dishes and images. Rows that already exist are
// left alone, so running it twice is safe.
func Seed(db *gorm.DB) error {
	now := time.Now()

	if err := seedUsers(db, now); err != nil {
		return err
	}
	if err := seedOpeningHours(db, now); err != nil {
		return err
	}
	if err := seedReferences(db, now); err != nil {
		return err
	}
	if err := seedMenus(db, now); err != nil {
		return err
	}

	utils.InfoLogger.Println("Database seed completed.")
	return nil
}

func seedUsers(db *gorm.DB, now time.Time) error {
	street10 := "10 Rue du Test"
	street12 := "12 Rue du Test"
	bordeaux := "Bordeaux"
	france := "France"
	code := 33000
	jose := "José"
	adminName := "Admin"
	julie := "Julie"
	employee := "Employée"
	phoneAdmin := "0600000000"
	phoneEmployee := "0600000001"

	users := []models.User{
		{
			Email:        "admin@vitegourmand.fr",
			Roles:        models.RoleAdmin,
			FirstName:    &jose,
			LastName:     &adminName,
			Phone:        &phoneAdmin,
			AddressLine1: &street10,
			City:         &bordeaux,
			PostalCode:   &code,
			Country:      &france,
		},
		{
			Email:        "employe@vitegourmand.fr",
			Roles:        models.RoleEmployee,
			FirstName:    &julie,
			LastName:     &employee,
			Phone:        &phoneEmployee,
			AddressLine1: &street12,
			City:         &bordeaux,
			PostalCode:   &code,
			Country:      &france,
		},
	}

	for i := range users {
		u := &users[i]

		var count int64
		db.Model(&models.User{}).Where("email = ?", u.Email).Count(&count)
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword(u.Email)), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hash)
		u.IsActive = true
		u.IsVerified = true
		u.CreatedAt = now
		u.UpdatedAt = now

		if err := db.Create(u).Error; err != nil {
			return err
		}
		utils.InfoLogger.Printf("Seeded account %s", u.Email)
	}
	return nil
}

// defaultPassword derives the seed password from the local part of the email,
// e.g. admin@vitegourmand.fr -> admin@123.
func defaultPassword(email string) string {
	local := email
	for i := range email {
		if email[i] == '@' {
			local = email[:i]
			break
		}
	}
	if local == "" {
		local = "user"
	}
	return local + "@123"
}

func seedOpeningHours(db *gorm.DB, now time.Time) error {
	var count int64
	db.Model(&models.OpeningHour{}).Count(&count)
	if count > 0 {
		return nil
	}

	week := "09:00"
	weekEnd := "18:00"
	satOpen := "10:00"
	satClose := "16:00"

	hours := []models.OpeningHour{
		{DayOfWeek: 1, OpenTime: &week, CloseTime: &weekEnd},
		{DayOfWeek: 2, OpenTime: &week, CloseTime: &weekEnd},
		{DayOfWeek: 3, OpenTime: &week, CloseTime: &weekEnd},
		{DayOfWeek: 4, OpenTime: &week, CloseTime: &weekEnd},
		{DayOfWeek: 5, OpenTime: &week, CloseTime: &weekEnd},
		{DayOfWeek: 6, OpenTime: &satOpen, CloseTime: &satClose},
		{DayOfWeek: 7, IsClosed: true},
	}
	for i := range hours {
		hours[i].CreatedAt = now
		if err := db.Create(&hours[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedReferences(db *gorm.DB, now time.Time) error {
	allergens := []string{"Gluten", "Lactose", "Arachides", "Fruits à coque", "Oeufs", "Poisson", "Soja", "Sésame", "Moutarde"}
	for _, name := range allergens {
		a := models.Allergen{Name: name, IsActive: true, CreatedAt: now}
		if err := db.Where(models.Allergen{Name: name}).FirstOrCreate(&a).Error; err != nil {
			return err
		}
	}

	diets := []string{"Végétarien", "Vegan", "Classique", "Sans gluten", "Halal"}
	for _, name := range diets {
		d := models.Diet{Name: name, IsActive: true, CreatedAt: now}
		if err := db.Where(models.Diet{Name: name}).FirstOrCreate(&d).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedMenus(db *gorm.DB, now time.Time) error {
	var count int64
	db.Model(&models.Menu{}).Count(&count)
	if count > 0 {
		return nil
	}

	dishes := []models.Dish{
		{Name: "Velouté de potimarron", Type: models.DishTypeEntree, Description: "Velouté crémeux aux éclats de noisette."},
		{Name: "Foie gras maison", Type: models.DishTypeEntree, Description: "Foie gras mi-cuit et chutney de figues."},
		{Name: "Chapon rôti", Type: models.DishTypePlat, Description: "Chapon fermier rôti, jus corsé et légumes de saison."},
		{Name: "Dos de cabillaud", Type: models.DishTypePlat, Description: "Cabillaud nacré, beurre blanc au citron."},
		{Name: "Bûche chocolat-praliné", Type: models.DishTypeDessert, Description: "Bûche glacée au chocolat noir et praliné."},
		{Name: "Tarte fine aux pommes", Type: models.DishTypeDessert, Description: "Tarte fine caramélisée, crème vanille."},
	}
	for i := range dishes {
		dishes[i].IsActive = true
		dishes[i].CreatedAt = now
		if err := db.Create(&dishes[i]).Error; err != nil {
			return err
		}
	}

	noel := "Noël"
	classique := "Classique"
	buffet := "Buffet"
	stock := 10

	menus := []struct {
		menu   models.Menu
		dishes []int // indexes into the dish list above
	}{
		{
			menu: models.Menu{
				Title:       "Menu Réveillon",
				ThemeLabel:  &noel,
				Description: "Le grand menu des fêtes, servi avec ses mises en bouche.",
				Conditions:  "Commande minimum 72h à l'avance.",
				MinPeople:   8,
				MinPrice:    28,
				Stock:       &stock,
			},
			dishes: []int{1, 2, 4},
		},
		{
			menu: models.Menu{
				Title:       "Menu Tradition",
				ThemeLabel:  &classique,
				Description: "Notre menu signature, renouvelé au fil des saisons.",
				Conditions:  "Commande minimum 48h à l'avance.",
				MinPeople:   4,
				MinPrice:    18,
			},
			dishes: []int{0, 3, 5},
		},
		{
			menu: models.Menu{
				Title:       "Buffet Cocktail",
				ThemeLabel:  &buffet,
				Description: "Pièces salées et sucrées à partager, dressées sur place.",
				Conditions:  "Commande minimum 24h à l'avance.",
				MinPeople:   12,
				MinPrice:    14,
			},
			dishes: []int{0, 5},
		},
	}

	for i := range menus {
		m := &menus[i].menu
		m.IsActive = true
		m.CreatedAt = now
		m.UpdatedAt = now

		if err := db.Create(m).Error; err != nil {
			return err
		}

		linked := make([]models.Dish, 0, len(menus[i].dishes))
		for _, idx := range menus[i].dishes {
			linked = append(linked, dishes[idx])
		}
		if err := db.Model(m).Association("Dishes").Replace(linked); err != nil {
			return err
		}

		img := models.MenuImage{
			MenuID:    m.ID,
			ImagePath: models.DefaultCoverPath,
			AltText:   fmt.Sprintf("%s - image 1", m.Title),
			Position:  1,
			IsCover:   true,
			CreatedAt: now,
		}
		if err := db.Create(&img).Error; err != nil {
			return err
		}
	}
	return nil
}
