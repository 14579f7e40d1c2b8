package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flashCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == FlashCookieName {
			return c
		}
	}
	t.Fatal("flash cookie not set")
	return nil
}

func TestFlash_SetThenPop(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	SetFlash(ctx, "success", "Logged in successfully.")

	cookie := flashCookie(t, w)
	require.NotEmpty(t, cookie.Value)

	w2 := httptest.NewRecorder()
	ctx2, _ := gin.CreateTestContext(w2)
	ctx2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx2.Request.AddCookie(cookie)

	flash := PopFlash(ctx2)
	require.NotNil(t, flash)
	assert.Equal(t, "success", flash.Category)
	assert.Equal(t, "Logged in successfully.", flash.Message)

	cleared := flashCookie(t, w2)
	assert.Empty(t, cleared.Value, "pop must clear the cookie")
}

func TestFlash_MessageMayContainSeparator(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	SetFlash(ctx, "warning", "left|right")

	ctx2, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx2.Request.AddCookie(flashCookie(t, w))

	flash := PopFlash(ctx2)
	require.NotNil(t, flash)
	assert.Equal(t, "left|right", flash.Message)
}

func TestFlash_PopWithoutCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, PopFlash(ctx))
}
