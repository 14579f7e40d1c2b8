package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chickens/chatterbox/middleware"
	"github.com/chickens/chatterbox/models"
	"github.com/chickens/chatterbox/store"
	"github.com/chickens/chatterbox/utils"
	"github.com/chickens/chatterbox/views"
)

// PostController serves the landing page and post/comment operations.
type PostController struct {
	store *store.Store
}

// NewPostController creates a PostController.
func NewPostController(st *store.Store) *PostController {
	return &PostController{store: st}
}

// Home lists the newest posts. Authenticated viewers also get a short chat
// preview; anonymous viewers see none.
func (p *PostController) Home(ctx *gin.Context) {
	posts, err := p.store.RecentPosts(store.DefaultPostLimit)
	if err != nil {
		serverError(ctx, err)
		return
	}

	view := views.Home{Base: baseView(ctx, "Home"), Posts: posts}
	if view.User != nil {
		recent, err := p.store.RecentChat(store.DefaultChatPreviewLimit)
		if err != nil {
			serverError(ctx, err)
			return
		}
		view.RecentChat = recent
	}

	ctx.HTML(http.StatusOK, "home", view)
}

// ShowCreatePost renders the new post form.
func (p *PostController) ShowCreatePost(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "create_post", views.CreatePost{Base: baseView(ctx, "New Post")})
}

// CreatePost inserts a post authored by the caller.
func (p *PostController) CreatePost(ctx *gin.Context) {
	user, ok := middleware.GetUser(ctx)
	if !ok {
		ctx.Redirect(http.StatusSeeOther, "/login")
		return
	}

	subject := ctx.PostForm("subject")
	body := ctx.PostForm("body")

	post, err := p.store.CreatePost(user.ID, subject, body)
	if err != nil {
		if errors.Is(err, store.ErrEmptyField) {
			utils.SetFlash(ctx, "warning", "Subject and body are required.")
			ctx.Redirect(http.StatusSeeOther, "/create_post")
			return
		}
		serverError(ctx, err)
		return
	}

	utils.Sugar.Infow("post created", "post_id", post.ID, "user_id", user.ID)
	utils.SetFlash(ctx, "success", "Post created.")
	ctx.Redirect(http.StatusSeeOther, "/")
}

// ShowPost renders one post with its comments. An unknown id is a terminal 404.
func (p *PostController) ShowPost(ctx *gin.Context) {
	post, ok := p.loadPost(ctx)
	if !ok {
		return
	}

	comments, err := p.store.CommentsForPost(post.ID)
	if err != nil {
		serverError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "post", views.PostDetail{
		Base:     baseView(ctx, post.Subject),
		Post:     *post,
		Comments: comments,
	})
}

// AddComment appends a comment to the post. The post is resolved before the
// identity check so commenting on a missing post is a 404 even for anonymous
// callers.
func (p *PostController) AddComment(ctx *gin.Context) {
	post, ok := p.loadPost(ctx)
	if !ok {
		return
	}

	user, authed := middleware.GetUser(ctx)
	if !authed {
		utils.SetFlash(ctx, "warning", "Login required to comment.")
		ctx.Redirect(http.StatusSeeOther, "/login")
		return
	}

	postURL := fmt.Sprintf("/post/%d", post.ID)

	_, err := p.store.AddComment(post.ID, user.ID, ctx.PostForm("body"))
	if err != nil {
		if errors.Is(err, store.ErrEmptyField) {
			utils.SetFlash(ctx, "warning", "Comment cannot be empty.")
			ctx.Redirect(http.StatusSeeOther, postURL)
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			notFound(ctx)
			return
		}
		serverError(ctx, err)
		return
	}

	utils.SetFlash(ctx, "success", "Comment added.")
	ctx.Redirect(http.StatusSeeOther, postURL)
}

func (p *PostController) loadPost(ctx *gin.Context) (*models.Post, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		notFound(ctx)
		return nil, false
	}

	post, err := p.store.PostByID(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(ctx)
			return nil, false
		}
		serverError(ctx, err)
		return nil, false
	}
	return post, true
}
