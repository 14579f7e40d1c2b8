package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chickens/chatterbox/models"
	"github.com/chickens/chatterbox/utils"
)

const (
	// ContextUserKey stores the resolved *models.User in Gin context.
	ContextUserKey = "current_user"
	// ContextChatAccessKey stores the session's chat-access grant.
	ContextChatAccessKey = "chat_access"
)

// CurrentUser resolves the caller's identity from the session cookie, loading
// the user row so every page sees fresh display fields. An invalid or stale
// cookie leaves the request anonymous; it never fails the request.
func CurrentUser(db *gorm.DB, secret []byte) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(utils.SessionCookieName)
		if err != nil || token == "" {
			ctx.Next()
			return
		}

		claims, err := utils.ParseSessionToken(secret, token)
		if err != nil {
			ctx.Next()
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			ctx.Next()
			return
		}

		ctx.Set(ContextUserKey, &user)
		ctx.Set(ContextChatAccessKey, claims.ChatAccess)
		ctx.Next()
	}
}

// LoginRequired redirects anonymous callers to the login page with a notice.
func LoginRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := GetUser(ctx); !ok {
			utils.SetFlash(ctx, "warning", "Login required.")
			ctx.Redirect(http.StatusSeeOther, "/login")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// ChatAccessRequired sends identified callers without a chat grant to the
// access-request flow. Must run after LoginRequired.
func ChatAccessRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !HasChatAccess(ctx) {
			ctx.Redirect(http.StatusSeeOther, "/chat_auth")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// GetUser returns the resolved user for this request, if any.
func GetUser(ctx *gin.Context) (*models.User, bool) {
	value, exists := ctx.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

// HasChatAccess reports whether this request's session carries the chat grant.
func HasChatAccess(ctx *gin.Context) bool {
	value, exists := ctx.Get(ContextChatAccessKey)
	if !exists {
		return false
	}
	granted, _ := value.(bool)
	return granted
}
