package site

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"studsafe/internal/domain"
	"studsafe/internal/pkg/render"
)

const recentNotesLimit = 6

type NoteReaderInterface interface {
	Recent(ctx context.Context, limit int) ([]domain.Note, error)
	Count(ctx context.Context) (int64, error)
}

type SubjectReaderInterface interface {
	ListWithCounts(ctx context.Context) ([]domain.SubjectWithCount, error)
	Count(ctx context.Context) (int64, error)
}

// Handler serves the landing page.
type Handler struct {
	notes    NoteReaderInterface
	subjects SubjectReaderInterface
}

func NewHandler(notes NoteReaderInterface, subjects SubjectReaderInterface) *Handler {
	return &Handler{notes: notes, subjects: subjects}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)
}

func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	recent, err := h.notes.Recent(ctx, recentNotesLimit)
	if err != nil {
		render.ServerError(c)
		return
	}

	subjects, err := h.subjects.ListWithCounts(ctx)
	if err != nil {
		render.ServerError(c)
		return
	}

	totalNotes, err := h.notes.Count(ctx)
	if err != nil {
		render.ServerError(c)
		return
	}

	totalSubjects, err := h.subjects.Count(ctx)
	if err != nil {
		render.ServerError(c)
		return
	}

	render.HTML(c, http.StatusOK, "home.html", gin.H{
		"RecentNotes":   recent,
		"Subjects":      subjects,
		"TotalNotes":    totalNotes,
		"TotalSubjects": totalSubjects,
	})
}
