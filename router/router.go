package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jridouane/vite-gourmand/config"
	"github.com/jridouane/vite-gourmand/controllers"
	"github.com/jridouane/vite-gourmand/middlewares"
	"github.com/jridouane/vite-gourmand/services"
	"github.com/jridouane/vite-gourmand/utils"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, mailer services.Mailer) *gin.Engine {
	r := gin.Default()

	if utils.Templates != nil {
		r.SetHTMLTemplate(utils.Templates)
	}

	// middlewares must be registered before any route: gin snapshots the
	// handler chain when a route is added, so a later Use never reaches it
	r.Use(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/uploads/") {
			path := strings.ToLower(c.Request.URL.Path)
			if !strings.HasSuffix(path, ".jpg") &&
				!strings.HasSuffix(path, ".jpeg") &&
				!strings.HasSuffix(path, ".png") &&
				!strings.HasSuffix(path, ".webp") {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
		}
		c.Next()
	})
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	// uploaded menu images; the gate above keeps non-image files unreachable
	r.Static("/uploads/menus", config.UploadDir())

	menuCtrl := controllers.NewMenuPublicController(db)
	hoursCtrl := controllers.NewOpeningHoursController(db)
	contactCtrl := controllers.NewContactController(db, mailer)
	profileCtrl := controllers.NewProfileController(db)
	userCtrl := controllers.NewUserController(db)
	dishCtrl := controllers.NewDishController(db)
	adminMenuCtrl := controllers.NewAdminMenuController(db)
	imageCtrl := controllers.NewMenuImageController(db)
	hourAdminCtrl := controllers.NewOpeningHourAdminController(db)
	refCtrl := controllers.NewReferenceController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/menus", menuCtrl.Index)
	r.GET("/menus/search", menuCtrl.Search)
	r.GET("/menu/:id", menuCtrl.Show)

	r.GET("/opening-hours", hoursCtrl.List)

	r.GET("/contact", contactCtrl.Show)
	r.POST("/contact", contactCtrl.Submit)

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.POST("/logout", userCtrl.Logout)
		authed.GET("/profile", profileCtrl.Index)
		authed.POST("/profile/update-field", profileCtrl.UpdateField)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminRequired())

	admin.GET("/dishes", dishCtrl.Index)
	admin.GET("/dishes/new", dishCtrl.New)
	admin.POST("/dishes/new", dishCtrl.New)
	admin.GET("/dishes/:id/edit", dishCtrl.Edit)
	admin.POST("/dishes/:id/edit", dishCtrl.Edit)
	admin.POST("/dishes/:id/delete", dishCtrl.Delete)

	admin.GET("/menus", adminMenuCtrl.Index)
	admin.GET("/menus/new", adminMenuCtrl.New)
	admin.POST("/menus/new", adminMenuCtrl.New)
	admin.GET("/menus/:id/edit", adminMenuCtrl.Edit)
	admin.POST("/menus/:id/edit", adminMenuCtrl.Edit)
	admin.POST("/menus/:id/delete", adminMenuCtrl.Delete)

	admin.GET("/menus/:id/images", imageCtrl.Index)
	admin.GET("/menus/:id/images/new", imageCtrl.New)
	admin.POST("/menus/:id/images/new", imageCtrl.New)
	// gin cannot mix /menus/:id/... and /menus/images/..., so image-level
	// actions live under /menu-images
	admin.POST("/menu-images/:img_id/delete", imageCtrl.Delete)
	admin.POST("/menu-images/:img_id/cover", imageCtrl.SetCover)

	admin.GET("/opening-hours", hourAdminCtrl.Index)
	admin.GET("/opening-hours/new", hourAdminCtrl.New)
	admin.POST("/opening-hours/new", hourAdminCtrl.New)
	admin.GET("/opening-hours/:id/edit", hourAdminCtrl.Edit)
	admin.POST("/opening-hours/:id/edit", hourAdminCtrl.Edit)
	admin.POST("/opening-hours/:id/delete", hourAdminCtrl.Delete)

	for _, res := range []struct {
		name string
		path string
	}{
		{"allergen", "/admin/allergens"},
		{"diet", "/admin/diets"},
	} {
		group := r.Group(res.path)
		group.Use(middlewares.AuthMiddleware(), middlewares.AdminRequired())
		group.GET("", refCtrl.Index(res.name, res.path))
		group.GET("/new", refCtrl.New(res.name, res.path))
		group.POST("/new", refCtrl.New(res.name, res.path))
		group.GET("/:id/edit", refCtrl.Edit(res.name, res.path))
		group.POST("/:id/edit", refCtrl.Edit(res.name, res.path))
		group.POST("/:id/delete", refCtrl.Delete(res.name, res.path))
	}

	return r
}
