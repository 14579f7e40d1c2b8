// Package store issues the per-request queries and commands behind every page.
// Each operation is a single statement or a short statement sequence against
// the shared relational store; no transaction spans operations.
//
// User-authored text is stored exactly as submitted, minus surrounding
// whitespace. Escaping is the renderer's job, done once by html/template.
package store

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/chickens/chatterbox/models"
	"github.com/chickens/chatterbox/utils"
)

const (
	// DefaultPostLimit caps the home page post listing.
	DefaultPostLimit = 10
	// DefaultChatPreviewLimit caps the home page chat preview.
	DefaultChatPreviewLimit = 6
)

// Store wraps the gorm handle with the application's data operations.
type Store struct {
	db *gorm.DB
}

// New creates a Store.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CreateUser registers a new account. The username is pre-checked for
// availability, but the unique index on users.username is the authority:
// a concurrent registration losing the race surfaces as ErrUsernameTaken.
func (s *Store) CreateUser(username, password, confirm, nickname, bio string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || confirm == "" {
		return nil, ErrEmptyField
	}
	if password != confirm {
		return nil, ErrPasswordMismatch
	}

	var existing models.User
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
		Nickname:     strings.TrimSpace(nickname),
		Bio:          strings.TrimSpace(bio),
	}
	if err := s.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies credentials and returns the matching user. A wrong
// password and an unknown username are indistinguishable to callers.
func (s *Store) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, ErrBadCredentials
	}
	return &user, nil
}

// UserByID loads a user by primary key.
func (s *Store) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile overwrites nickname and bio (empty values allowed) and, when
// avatar is non-empty, the stored avatar reference. Only the owner reaches
// this operation; there is no target-user parameter.
func (s *Store) UpdateProfile(userID uint, nickname, bio, avatar string) error {
	user, err := s.UserByID(userID)
	if err != nil {
		return err
	}
	user.Nickname = strings.TrimSpace(nickname)
	user.Bio = strings.TrimSpace(bio)
	if avatar != "" {
		user.Avatar = avatar
	}
	return s.db.Model(user).Select("nickname", "bio", "avatar").Updates(map[string]interface{}{
		"nickname": user.Nickname,
		"bio":      user.Bio,
		"avatar":   user.Avatar,
	}).Error
}

// CreatePost inserts a post with a server-assigned UTC timestamp.
func (s *Store) CreatePost(userID uint, subject, body string) (*models.Post, error) {
	subject = strings.TrimSpace(subject)
	body = strings.TrimSpace(body)
	if subject == "" || body == "" {
		return nil, ErrEmptyField
	}

	post := models.Post{
		UserID:    userID,
		Subject:   subject,
		Body:      body,
		Timestamp: time.Now().UTC(),
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// RecentPosts returns the newest posts with their authors, newest first.
// Older posts fall off the listing; they stay reachable by id.
func (s *Store) RecentPosts(limit int) ([]models.Post, error) {
	if limit <= 0 {
		limit = DefaultPostLimit
	}
	var posts []models.Post
	err := s.db.Preload("User").Order("timestamp DESC, id DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

// PostByID loads a post with its author.
func (s *Store) PostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.Preload("User").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// AddComment appends a comment to an existing post.
func (s *Store) AddComment(postID, userID uint, body string) (*models.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyField
	}

	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := models.Comment{
		PostID:    post.ID,
		UserID:    userID,
		Body:      body,
		Timestamp: time.Now().UTC(),
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// CommentsForPost returns a post's comments with their authors, oldest first.
func (s *Store) CommentsForPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Preload("User").Where("post_id = ?", postID).Order("timestamp ASC, id ASC").Find(&comments).Error
	return comments, err
}

// AddChatMessage appends a chat message. An empty message is a silent no-op.
// Chat access is enforced by the caller, not here.
func (s *Store) AddChatMessage(userID uint, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	msg := models.ChatMessage{
		UserID:    userID,
		Message:   text,
		Timestamp: time.Now().UTC(),
	}
	return s.db.Create(&msg).Error
}

// ChatHistory returns the full room history with senders, oldest first.
func (s *Store) ChatHistory() ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := s.db.Preload("User").Order("timestamp ASC, id ASC").Find(&msgs).Error
	return msgs, err
}

// RecentChat returns the newest messages, reordered oldest-first for display.
func (s *Store) RecentChat(limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultChatPreviewLimit
	}
	var msgs []models.ChatMessage
	if err := s.db.Preload("User").Order("timestamp DESC, id DESC").Limit(limit).Find(&msgs).Error; err != nil {
		return nil, err
	}
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// isUniqueViolation detects a duplicate-key failure from the driver so the
// registration race collapses into ErrUsernameTaken instead of a 500.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique")
}
