package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jridouane/vite-gourmand/models"
	"github.com/jridouane/vite-gourmand/repository"
	"github.com/jridouane/vite-gourmand/utils"
	"gorm.io/gorm"
)

type MenuPublicController struct {
	Repo *repository.MenuRepository
}

func NewMenuPublicController(db *gorm.DB) *MenuPublicController {
	return &MenuPublicController{Repo: repository.NewMenuRepository(db)}
}

// Index renders the public catalogue: active menus newest first, plus the
// distinct theme labels feeding the filter select.
func (mc *MenuPublicController) Index(c *gin.Context) {
	menus, err := mc.Repo.FindActive()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	themes, err := mc.Repo.DistinctThemes()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "menus_index.html", gin.H{
		"Menus":  menus,
		"Themes": themes,
	})
}

// Search answers the AJAX filter requests from the catalogue page with a
// rendered card list: {ok, count, html}.
func (mc *MenuPublicController) Search(c *gin.Context) {
	filter := repository.MenuFilter{
		PriceMax:      c.Query("priceMax"),
		PriceMin:      c.Query("priceMin"),
		PriceMaxRange: c.Query("priceMaxRange"),
		Theme:         c.Query("theme"),
		MinPeople:     c.Query("minPeople"),
	}

	menus, err := mc.Repo.Search(filter)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	html, err := utils.RenderToString("menu_cards.html", gin.H{"Menus": menus})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"count": len(menus),
		"html":  html,
	})
}

// Show renders a menu detail page with the cover and side images and the
// dishes grouped by course.
func (mc *MenuPublicController) Show(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	menu, err := mc.Repo.FindByID(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu not found"))
		return
	}

	cover, side := models.SelectCoverPaths(menu.Images)

	c.HTML(http.StatusOK, "menu_show.html", gin.H{
		"Menu":      menu,
		"CoverPath": cover,
		"SidePath":  side,
		"Entree":    menu.DishByType(models.DishTypeEntree),
		"Plat":      menu.DishByType(models.DishTypePlat),
		"Dessert":   menu.DishByType(models.DishTypeDessert),
	})
}
