package utils

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the browser cookie carrying the signed session token.
const SessionCookieName = "chatterbox_session"

// SessionTTL is how long an issued session stays valid.
const SessionTTL = 72 * time.Hour

// SessionClaims is the signed payload of the session cookie: the user identity
// plus the session-scoped chat-access grant. The grant is never persisted.
type SessionClaims struct {
	UserID     uint `json:"uid"`
	ChatAccess bool `json:"chat"`
	jwt.RegisteredClaims
}

// IssueSessionToken signs a session token for the given user identity.
func IssueSessionToken(secret []byte, userID uint, chatAccess bool, duration time.Duration) (string, error) {
	claims := SessionClaims{
		UserID:     userID,
		ChatAccess: chatAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseSessionToken validates a session token and returns its claims.
func ParseSessionToken(secret []byte, tokenStr string) (*SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid session claims")
	}

	return claims, nil
}

// SetSessionCookie signs and attaches a session cookie to the response.
func SetSessionCookie(ctx *gin.Context, secret []byte, userID uint, chatAccess bool) error {
	token, err := IssueSessionToken(secret, userID, chatAccess, SessionTTL)
	if err != nil {
		return err
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(SessionCookieName, token, int(SessionTTL.Seconds()), "/", "", false, true)
	return nil
}

// ClearSessionCookie removes the session cookie, dropping both identity and chat access.
func ClearSessionCookie(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}
