// Package flash carries one-shot notices across a redirect in a cookie,
// cleared as soon as the next page reads it.
package flash

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const cookieName = "studsafe_flash"

const (
	LevelSuccess = "success"
	LevelInfo    = "info"
	LevelError   = "error"
)

type Notice struct {
	Level   string
	Message string
}

func Success(c *gin.Context, message string) { set(c, LevelSuccess, message) }
func Info(c *gin.Context, message string)    { set(c, LevelInfo, message) }
func Error(c *gin.Context, message string)   { set(c, LevelError, message) }

func set(c *gin.Context, level, message string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, level+"|"+message, 60, "/", "", false, true)
}

// Take reads and clears the pending notice, if any.
func Take(c *gin.Context) *Notice {
	raw, err := c.Cookie(cookieName)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	level, message, found := strings.Cut(raw, "|")
	if !found || message == "" {
		return nil
	}
	return &Notice{Level: level, Message: message}
}
