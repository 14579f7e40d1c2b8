// Package views defines one view model per page. The presentation layer
// receives exactly the variant for the page being rendered instead of a
// shared bag keyed by a page string.
package views

import (
	"github.com/chickens/chatterbox/models"
	"github.com/chickens/chatterbox/utils"
)

// Base carries what every page needs: the viewer and the pending notice.
type Base struct {
	Title string
	User  *models.User
	Flash *utils.Flash
}

// Home is the landing page: recent posts, plus a chat preview for
// authenticated viewers only.
type Home struct {
	Base
	Posts      []models.Post
	RecentChat []models.ChatMessage
}

// Register is the account creation form.
type Register struct {
	Base
}

// Login is the credential form.
type Login struct {
	Base
}

// Profile is the viewer's own profile form.
type Profile struct {
	Base
}

// CreatePost is the new post form.
type CreatePost struct {
	Base
}

// PostDetail is one post with its comments, oldest first.
type PostDetail struct {
	Base
	Post     models.Post
	Comments []models.Comment
}

// ChatAuth is the full-name access-request form.
type ChatAuth struct {
	Base
}

// Chat is the full room history, oldest first.
type Chat struct {
	Base
	Messages []models.ChatMessage
}
