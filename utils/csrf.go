package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"
)

var csrfSecret []byte

func init() {
	secret := os.Getenv("APP_SECRET")
	if secret == "" {
		secret = "ViteGourmandDevAppSecret"
	}
	csrfSecret = []byte(secret)
}

// CSRFToken derives the token for a form intention, e.g. "contact_message"
// or "delete_menu_4". The same intention always yields the same token, so
// server-rendered forms can embed it without session storage.
func CSRFToken(intention string) string {
	mac := hmac.New(sha256.New, csrfSecret)
	mac.Write([]byte(intention))
	return hex.EncodeToString(mac.Sum(nil))
}

func ValidCSRFToken(intention, token string) bool {
	expected := CSRFToken(intention)
	return hmac.Equal([]byte(expected), []byte(token))
}
