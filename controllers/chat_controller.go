package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chickens/chatterbox/middleware"
	"github.com/chickens/chatterbox/store"
	"github.com/chickens/chatterbox/utils"
	"github.com/chickens/chatterbox/views"
)

// ChatController guards and serves the single shared chat room.
type ChatController struct {
	store  *store.Store
	secret []byte
	allow  *utils.AllowList
}

// NewChatController creates a ChatController.
func NewChatController(st *store.Store, secret []byte, allow *utils.AllowList) *ChatController {
	return &ChatController{store: st, secret: secret, allow: allow}
}

// ShowChatAuth renders the access-request form.
func (c *ChatController) ShowChatAuth(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "chat_auth", views.ChatAuth{Base: baseView(ctx, "Chat Room Access")})
}

// RequestChatAccess grants the session-scoped chat flag when the declared full
// name is on the allow-list. The grant lives only in the session cookie; it is
// never persisted and is lost on logout. The declared name is not checked
// against the account: any logged-in user may claim any allowed name.
func (c *ChatController) RequestChatAccess(ctx *gin.Context) {
	user, ok := middleware.GetUser(ctx)
	if !ok {
		ctx.Redirect(http.StatusSeeOther, "/login")
		return
	}

	fullName := ctx.PostForm("full_name")
	if !c.allow.Allowed(fullName) {
		utils.Sugar.Infow("chat access denied", "user_id", user.ID)
		view := views.ChatAuth{Base: baseView(ctx, "Chat Room Access")}
		view.Flash = &utils.Flash{Category: "danger", Message: "Access denied. Your full name is not authorized."}
		ctx.HTML(http.StatusOK, "chat_auth", view)
		return
	}

	if err := utils.SetSessionCookie(ctx, c.secret, user.ID, true); err != nil {
		serverError(ctx, err)
		return
	}
	utils.SetFlash(ctx, "success", "Access granted to chat room.")
	ctx.Redirect(http.StatusSeeOther, "/chat")
}

// ChatRoom serves the room. A POST first appends the submitted message (an
// empty message is silently dropped); either way the full ascending history is
// re-rendered.
func (c *ChatController) ChatRoom(ctx *gin.Context) {
	user, ok := middleware.GetUser(ctx)
	if !ok {
		ctx.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if ctx.Request.Method == http.MethodPost {
		if err := c.store.AddChatMessage(user.ID, ctx.PostForm("message")); err != nil {
			serverError(ctx, err)
			return
		}
	}

	messages, err := c.store.ChatHistory()
	if err != nil {
		serverError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "chat", views.Chat{
		Base:     baseView(ctx, "Chat Room"),
		Messages: messages,
	})
}
