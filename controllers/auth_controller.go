package controllers

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/chickens/chatterbox/middleware"
	"github.com/chickens/chatterbox/store"
	"github.com/chickens/chatterbox/utils"
	"github.com/chickens/chatterbox/views"
)

// AuthController handles registration, login, logout and profile management.
type AuthController struct {
	store     *store.Store
	secret    []byte
	avatarDir string
}

// NewAuthController creates an AuthController.
func NewAuthController(st *store.Store, secret []byte, avatarDir string) *AuthController {
	return &AuthController{store: st, secret: secret, avatarDir: avatarDir}
}

// ShowRegister renders the registration form.
func (a *AuthController) ShowRegister(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "register", views.Register{Base: baseView(ctx, "Register")})
}

// Register creates a new account from the submitted form.
func (a *AuthController) Register(ctx *gin.Context) {
	username := ctx.PostForm("username")
	password := ctx.PostForm("password")
	confirm := ctx.PostForm("confirm")
	nickname := ctx.PostForm("nickname")
	bio := ctx.PostForm("bio")

	user, err := a.store.CreateUser(username, password, confirm, nickname, bio)
	switch {
	case errors.Is(err, store.ErrEmptyField):
		utils.SetFlash(ctx, "warning", "Please fill in all required fields.")
		ctx.Redirect(http.StatusSeeOther, "/register")
		return
	case errors.Is(err, store.ErrPasswordMismatch):
		utils.SetFlash(ctx, "warning", "Passwords do not match.")
		ctx.Redirect(http.StatusSeeOther, "/register")
		return
	case errors.Is(err, store.ErrUsernameTaken):
		utils.SetFlash(ctx, "warning", "Username already taken.")
		ctx.Redirect(http.StatusSeeOther, "/register")
		return
	case err != nil:
		serverError(ctx, err)
		return
	}

	utils.Sugar.Infow("user registered", "user_id", user.ID, "username", user.Username)
	utils.SetFlash(ctx, "success", "Registered successfully. Please login.")
	ctx.Redirect(http.StatusSeeOther, "/login")
}

// ShowLogin renders the login form.
func (a *AuthController) ShowLogin(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login", views.Login{Base: baseView(ctx, "Login")})
}

// Login verifies credentials and establishes a session. No session is created
// on failure.
func (a *AuthController) Login(ctx *gin.Context) {
	username := ctx.PostForm("username")
	password := ctx.PostForm("password")

	user, err := a.store.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, store.ErrBadCredentials) {
			utils.SetFlash(ctx, "danger", "Invalid username or password.")
			ctx.Redirect(http.StatusSeeOther, "/login")
			return
		}
		serverError(ctx, err)
		return
	}

	// A fresh login never carries a chat grant; it must be re-requested.
	if err := utils.SetSessionCookie(ctx, a.secret, user.ID, false); err != nil {
		serverError(ctx, err)
		return
	}
	utils.SetFlash(ctx, "success", "Logged in successfully.")
	ctx.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session unconditionally, dropping identity and chat access.
func (a *AuthController) Logout(ctx *gin.Context) {
	utils.ClearSessionCookie(ctx)
	utils.SetFlash(ctx, "info", "Logged out.")
	ctx.Redirect(http.StatusSeeOther, "/")
}

// ShowProfile renders the caller's own profile form.
func (a *AuthController) ShowProfile(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "profile", views.Profile{Base: baseView(ctx, "Profile")})
}

// UpdateProfile overwrites nickname and bio and optionally replaces the
// avatar. An upload with a disallowed extension is silently ignored; the
// other fields still update.
func (a *AuthController) UpdateProfile(ctx *gin.Context) {
	user, ok := middleware.GetUser(ctx)
	if !ok {
		ctx.Redirect(http.StatusSeeOther, "/login")
		return
	}

	nickname := ctx.PostForm("nickname")
	bio := ctx.PostForm("bio")

	var avatarName string
	if file, err := ctx.FormFile("avatar"); err == nil && file != nil && utils.AllowedAvatarFile(file.Filename) {
		avatarName = utils.AvatarFilename(user.ID, file.Filename)
		if err := ctx.SaveUploadedFile(file, filepath.Join(a.avatarDir, avatarName)); err != nil {
			serverError(ctx, err)
			return
		}
	}

	if err := a.store.UpdateProfile(user.ID, nickname, bio, avatarName); err != nil {
		serverError(ctx, err)
		return
	}

	utils.SetFlash(ctx, "success", "Profile updated.")
	ctx.Redirect(http.StatusSeeOther, "/profile")
}
