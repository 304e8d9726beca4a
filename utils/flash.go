package utils

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

const flashCookie = "vg_flash"

// SetFlash stores a one-shot message for the next rendered page. Level is
// "success" or "danger", matching the alert classes in the templates.
func SetFlash(c *gin.Context, level, message string) {
	c.SetCookie(flashCookie, url.QueryEscape(level+"|"+message), 60, "/", "", false, true)
}

// PopFlash reads and clears the pending flash message, if any.
func PopFlash(c *gin.Context) (level, message string, ok bool) {
	raw, err := c.Cookie(flashCookie)
	if err != nil {
		return "", "", false
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return "", "", false
	}
	for i := 0; i < len(decoded); i++ {
		if decoded[i] == '|' {
			return decoded[:i], decoded[i+1:], true
		}
	}
	return "", decoded, true
}
