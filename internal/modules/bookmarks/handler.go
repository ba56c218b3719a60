package bookmarks

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"studsafe/internal/middleware"
	"studsafe/internal/pkg/flash"
	"studsafe/internal/pkg/render"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookmark/:id", h.Toggle)
}

func (h *Handler) Toggle(c *gin.Context) {
	noteID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		render.NotFound(c)
		return
	}

	user := middleware.UserFrom(c)

	added, err := h.service.Toggle(c.Request.Context(), user.ID, noteID)
	if err != nil {
		if errors.Is(err, ErrNoteNotFound) {
			render.NotFound(c)
			return
		}
		render.ServerError(c)
		return
	}

	if added {
		flash.Success(c, "Note bookmarked! 🔖")
	} else {
		flash.Info(c, "Bookmark removed.")
	}

	c.Redirect(http.StatusFound, backTo(c))
}

// backTo bounces the user to the page they toggled from, falling back to
// browse. Only same-site referers are honored.
func backTo(c *gin.Context) string {
	referer := c.Request.Referer()
	if referer == "" {
		return "/browse"
	}

	u, err := url.Parse(referer)
	if err != nil {
		return "/browse"
	}
	if u.Host != "" && u.Host != c.Request.Host {
		return "/browse"
	}
	if !strings.HasPrefix(u.Path, "/") {
		return "/browse"
	}

	target := u.Path
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}
	return target
}
