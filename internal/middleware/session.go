package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"studsafe/internal/domain"
)

// SessionCookie holds the raw opaque session token.
const SessionCookie = "studsafe_session"

const userKey = "current_user"

// UserResolver turns a raw session token into the logged-in user.
type UserResolver interface {
	UserFromToken(ctx context.Context, rawToken string) (*domain.User, error)
}

// CurrentUser resolves the session cookie on every request and stashes the
// user in the context. Requests without a valid session stay anonymous.
func CurrentUser(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			if user, err := resolver.UserFromToken(c.Request.Context(), token); err == nil {
				c.Set(userKey, user)
			}
		}
		c.Next()
	}
}

// UserFrom returns the authenticated user for this request, or nil.
func UserFrom(c *gin.Context) *domain.User {
	v, exists := c.Get(userKey)
	if !exists {
		return nil
	}
	user, ok := v.(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// RequireAuth redirects anonymous requests to the login page, carrying the
// requested path so login can send the user back.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserFrom(c) != nil {
			c.Next()
			return
		}
		next := c.Request.URL.RequestURI()
		c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(next))
		c.Abort()
	}
}

// RedirectIfAuthed sends already-logged-in users home; the signup and login
// pages are anonymous-only.
func RedirectIfAuthed() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserFrom(c) != nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SafeNext validates a post-login redirect target. Only local paths are
// honored so the next param cannot bounce users to another origin.
func SafeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
