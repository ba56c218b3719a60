// Package render wraps HTML page rendering so every page sees the current
// user and any pending flash notice without handlers wiring them by hand.
package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studsafe/internal/middleware"
	"studsafe/internal/pkg/flash"
)

func HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["User"]; !ok {
		data["User"] = middleware.UserFrom(c)
	}
	if _, ok := data["Notice"]; !ok {
		data["Notice"] = flash.Take(c)
	}
	c.HTML(status, name, data)
}

func NotFound(c *gin.Context) {
	HTML(c, http.StatusNotFound, "error.html", gin.H{
		"Status":  http.StatusNotFound,
		"Message": "The page you are looking for does not exist.",
	})
}

func MethodNotAllowed(c *gin.Context) {
	HTML(c, http.StatusMethodNotAllowed, "error.html", gin.H{
		"Status":  http.StatusMethodNotAllowed,
		"Message": "That method is not allowed here.",
	})
}

func ServerError(c *gin.Context) {
	HTML(c, http.StatusInternalServerError, "error.html", gin.H{
		"Status":  http.StatusInternalServerError,
		"Message": "Something went wrong. Please try again.",
	})
}
