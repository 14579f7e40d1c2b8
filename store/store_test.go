package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chickens/chatterbox/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}, &models.ChatMessage{}))
	return New(db)
}

func mustUser(t *testing.T, s *Store, username string) *models.User {
	t.Helper()
	u, err := s.CreateUser(username, "secret1", "secret1", "", "")
	require.NoError(t, err)
	return u
}

func TestCreateUser_Validation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateUser("", "pw", "pw", "", "")
	assert.ErrorIs(t, err, ErrEmptyField)

	_, err = s.CreateUser("alice", "", "", "", "")
	assert.ErrorIs(t, err, ErrEmptyField)

	_, err = s.CreateUser("alice", "pw1", "pw2", "", "")
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	var count int64
	require.NoError(t, s.db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count, "no row may be created on validation failure")
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	s := newTestStore(t)
	mustUser(t, s, "alice")

	_, err := s.CreateUser("alice", "other", "other", "", "")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	var count int64
	require.NoError(t, s.db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateUser_StoresHashNotPassword(t *testing.T) {
	s := newTestStore(t)
	u := mustUser(t, s, "alice")
	assert.NotEqual(t, "secret1", u.PasswordHash)
	assert.NotEmpty(t, u.PasswordHash)
}

func TestAuthenticate(t *testing.T) {
	s := newTestStore(t)
	mustUser(t, s, "alice")

	u, err := s.Authenticate("alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = s.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = s.Authenticate("nobody", "secret1")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestCreatePost_Validation(t *testing.T) {
	s := newTestStore(t)
	u := mustUser(t, s, "alice")

	for _, tc := range []struct{ subject, body string }{
		{"", "body"},
		{"subject", ""},
		{"   ", "body"},
		{"subject", "  \n\t "},
	} {
		_, err := s.CreatePost(u.ID, tc.subject, tc.body)
		assert.ErrorIs(t, err, ErrEmptyField, "subject=%q body=%q", tc.subject, tc.body)
	}

	var count int64
	require.NoError(t, s.db.Model(&models.Post{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPost_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	u := mustUser(t, s, "alice")

	created, err := s.CreatePost(u.ID, "Hi", "Hello world")
	require.NoError(t, err)

	got, err := s.PostByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hi", got.Subject)
	assert.Equal(t, "Hello world", got.Body)
	assert.Equal(t, u.ID, got.UserID)
	assert.Equal(t, "alice", got.User.Username)
	assert.WithinDuration(t, created.Timestamp, got.Timestamp, time.Second)
}

func TestUserText_StoredVerbatim(t *testing.T) {
	s := newTestStore(t)
	u, err := s.CreateUser("alice", "secret1", "secret1", "", "Tom & Jerry's <fan>")
	require.NoError(t, err)
	assert.Equal(t, "Tom & Jerry's <fan>", u.Bio)

	post, err := s.CreatePost(u.ID, "Q&A: what's <new>?", "I <3 Go, it's great & fast")
	require.NoError(t, err)
	got, err := s.PostByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Q&A: what's <new>?", got.Subject)
	assert.Equal(t, "I <3 Go, it's great & fast", got.Body)

	comment, err := s.AddComment(post.ID, u.ID, "me & you < them")
	require.NoError(t, err)
	assert.Equal(t, "me & you < them", comment.Body)

	require.NoError(t, s.AddChatMessage(u.ID, "salt & pepper"))
	history, err := s.ChatHistory()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "salt & pepper", history[0].Message)
}

func TestPostByID_NotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.PostByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecentPosts_OrderAndLimit(t *testing.T) {
	s := newTestStore(t)
	u := mustUser(t, s, "alice")

	for i := 0; i < 12; i++ {
		_, err := s.CreatePost(u.ID, "subject", "body")
		require.NoError(t, err)
	}

	posts, err := s.RecentPosts(10)
	require.NoError(t, err)
	require.Len(t, posts, 10)
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i-1].Timestamp.Before(posts[i].Timestamp), "posts must be newest first")
	}
	assert.Equal(t, "alice", posts[0].User.Username, "author must be joined")
}

func TestComments_AscendingWithAuthors(t *testing.T) {
	s := newTestStore(t)
	alice := mustUser(t, s, "alice")
	bob := mustUser(t, s, "bob")

	post, err := s.CreatePost(alice.ID, "Hi", "Hello world")
	require.NoError(t, err)

	first, err := s.AddComment(post.ID, bob.ID, "Nice!")
	require.NoError(t, err)
	second, err := s.AddComment(post.ID, alice.ID, "Thanks!")
	require.NoError(t, err)

	comments, err := s.CommentsForPost(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, second.ID, comments[1].ID)
	assert.Equal(t, "bob", comments[0].User.Username)
	assert.Equal(t, "alice", comments[1].User.Username)
}

func TestAddComment_Errors(t *testing.T) {
	s := newTestStore(t)
	u := mustUser(t, s, "alice")

	_, err := s.AddComment(999, u.ID, "hello")
	assert.ErrorIs(t, err, ErrNotFound)

	post, err := s.CreatePost(u.ID, "Hi", "Hello world")
	require.NoError(t, err)

	_, err = s.AddComment(post.ID, u.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyField)

	var count int64
	require.NoError(t, s.db.Model(&models.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestChat_EmptyMessageIsNoOp(t *testing.T) {
	s := newTestStore(t)
	u := mustUser(t, s, "alice")

	require.NoError(t, s.AddChatMessage(u.ID, "   "))

	var count int64
	require.NoError(t, s.db.Model(&models.ChatMessage{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestChat_HistoryAndRecent(t *testing.T) {
	s := newTestStore(t)
	u := mustUser(t, s, "alice")

	texts := []string{"m1", "m2", "m3", "m4", "m5", "m6", "m7", "m8"}
	for _, txt := range texts {
		require.NoError(t, s.AddChatMessage(u.ID, txt))
	}

	history, err := s.ChatHistory()
	require.NoError(t, err)
	require.Len(t, history, len(texts))
	for i, msg := range history {
		assert.Equal(t, texts[i], msg.Message, "history must be oldest first")
		assert.Equal(t, "alice", msg.User.Username)
	}

	recent, err := s.RecentChat(6)
	require.NoError(t, err)
	require.Len(t, recent, 6)
	// Newest six, still displayed oldest first.
	assert.Equal(t, "m3", recent[0].Message)
	assert.Equal(t, "m8", recent[5].Message)
}

func TestUpdateProfile(t *testing.T) {
	s := newTestStore(t)
	u := mustUser(t, s, "alice")

	require.NoError(t, s.UpdateProfile(u.ID, "Ally", "hello there", "1_pic.png"))
	got, err := s.UserByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ally", got.Nickname)
	assert.Equal(t, "hello there", got.Bio)
	assert.Equal(t, "1_pic.png", got.Avatar)
	assert.Equal(t, "Ally", got.DisplayName())

	// Empty avatar keeps the stored reference; empty nickname/bio overwrite.
	require.NoError(t, s.UpdateProfile(u.ID, "", "", ""))
	got, err = s.UserByID(u.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Nickname)
	assert.Empty(t, got.Bio)
	assert.Equal(t, "1_pic.png", got.Avatar)
	assert.Equal(t, "alice", got.DisplayName(), "display name falls back to username")
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	s := newTestStore(t)
	err := s.UpdateProfile(42, "x", "y", "")
	assert.ErrorIs(t, err, ErrNotFound)
}
