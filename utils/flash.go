package utils

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// FlashCookieName is the one-shot notice cookie read and cleared on the next page render.
const FlashCookieName = "chatterbox_flash"

// Flash is a transient user-facing notice. Category maps to an alert style
// (success, info, warning, danger) and carries no behavioral meaning.
type Flash struct {
	Category string
	Message  string
}

// SetFlash queues a notice for the next rendered page.
func SetFlash(ctx *gin.Context, category, message string) {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(category + "|" + message))
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(FlashCookieName, encoded, 300, "/", "", false, true)
}

// PopFlash returns the pending notice, if any, and clears it.
func PopFlash(ctx *gin.Context) *Flash {
	encoded, err := ctx.Cookie(FlashCookieName)
	if err != nil || encoded == "" {
		return nil
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(FlashCookieName, "", -1, "/", "", false, true)

	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}
	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return nil
	}
	return &Flash{Category: parts[0], Message: parts[1]}
}
