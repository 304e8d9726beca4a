package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jridouane/vite-gourmand/utils"
)

// The back-office modals follow one contract: GET over AJAX returns the form
// fragment as HTML, POST over AJAX returns {ok, message} on success or
// {ok:false, html} with 422 when the submitted form does not validate.

func respondFormFragment(c *gin.Context, template string, data gin.H) {
	c.HTML(http.StatusOK, template, data)
}

func respondInvalidForm(c *gin.Context, template string, data gin.H) {
	html, err := utils.RenderToString(template, data)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "html": html})
}

func respondAdminSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": message})
}

// validDeleteToken checks the per-resource CSRF token, e.g. delete_dish_12.
func validDeleteToken(c *gin.Context, intention string) bool {
	return utils.ValidCSRFToken(intention, c.PostForm("_token"))
}
