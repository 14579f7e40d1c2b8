package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chickens/chatterbox/middleware"
	"github.com/chickens/chatterbox/utils"
	"github.com/chickens/chatterbox/views"
)

// baseView assembles the fields every page shares: the viewer resolved by the
// session middleware and the pending one-shot notice.
func baseView(ctx *gin.Context, title string) views.Base {
	base := views.Base{Title: title}
	if user, ok := middleware.GetUser(ctx); ok {
		base.User = user
	}
	base.Flash = utils.PopFlash(ctx)
	return base
}

// serverError ends the request with a generic failure; infrastructure errors
// are logged but never surfaced to the user.
func serverError(ctx *gin.Context, err error) {
	utils.Sugar.Errorw("request failed",
		"path", ctx.Request.URL.Path,
		"request_id", ctx.GetString(utils.ContextRequestIDKey),
		"error", err,
	)
	ctx.AbortWithStatus(http.StatusInternalServerError)
}

// notFound renders the terminal 404 page.
func notFound(ctx *gin.Context) {
	ctx.HTML(http.StatusNotFound, "not_found", views.Base{Title: "Not Found"})
	ctx.Abort()
}
