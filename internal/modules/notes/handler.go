package notes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studsafe/internal/middleware"
	"studsafe/internal/pkg/flash"
	"studsafe/internal/pkg/render"
	"studsafe/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r *gin.Engine) {
	r.GET("/browse", h.Browse)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/upload", h.UploadPage)
	rg.POST("/upload", h.Upload)
	rg.GET("/download/:id", h.Download)
	rg.GET("/dashboard", h.Dashboard)
}

func (h *Handler) Browse(c *gin.Context) {
	var subjectID *int64
	if raw := c.Query("subject"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			subjectID = &id
		}
	}
	query := c.Query("q")

	notes, subjects, err := h.service.Browse(c.Request.Context(), subjectID, query)
	if err != nil {
		render.ServerError(c)
		return
	}

	var currentSubject int64
	if subjectID != nil {
		currentSubject = *subjectID
	}

	render.HTML(c, http.StatusOK, "browse.html", gin.H{
		"Notes":          notes,
		"Subjects":       subjects,
		"CurrentSubject": currentSubject,
		"SearchQuery":    query,
	})
}

func (h *Handler) UploadPage(c *gin.Context) {
	subjects, err := h.service.Subjects(c.Request.Context())
	if err != nil {
		render.ServerError(c)
		return
	}

	render.HTML(c, http.StatusOK, "upload.html", gin.H{
		"Form":     UploadForm{},
		"Subjects": subjects,
	})
}

func (h *Handler) Upload(c *gin.Context) {
	var form UploadForm
	_ = c.ShouldBind(&form)

	fieldErrors := validator.Validate(form)
	if fieldErrors == nil {
		fieldErrors = map[string]string{}
	}
	// The form field is "subject", not the struct field name
	if msg, ok := fieldErrors["subjectid"]; ok {
		delete(fieldErrors, "subjectid")
		fieldErrors["subject"] = msg
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		fieldErrors["file"] = "Please choose a file to upload."
	}

	if len(fieldErrors) > 0 {
		h.rerenderUpload(c, form, fieldErrors)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		render.ServerError(c)
		return
	}
	defer file.Close()

	user := middleware.UserFrom(c)
	_, err = h.service.Upload(c.Request.Context(), user, form, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrSubjectNotFound):
			h.rerenderUpload(c, form, map[string]string{"subject": "Select a valid subject."})
		case errors.Is(err, ErrFileRequired):
			h.rerenderUpload(c, form, map[string]string{"file": "Please choose a file to upload."})
		default:
			render.ServerError(c)
		}
		return
	}

	flash.Success(c, "Your notes have been uploaded successfully! 📚")
	c.Redirect(http.StatusFound, "/browse")
}

func (h *Handler) rerenderUpload(c *gin.Context, form UploadForm, fieldErrors map[string]string) {
	subjects, err := h.service.Subjects(c.Request.Context())
	if err != nil {
		render.ServerError(c)
		return
	}
	render.HTML(c, http.StatusOK, "upload.html", gin.H{
		"Form":     form,
		"Subjects": subjects,
		"Errors":   fieldErrors,
	})
}

func (h *Handler) Download(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		render.NotFound(c)
		return
	}

	note, path, err := h.service.Download(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNoteNotFound) || errors.Is(err, ErrFileMissing) {
			render.NotFound(c)
			return
		}
		render.ServerError(c)
		return
	}

	c.FileAttachment(path, note.FileName)
}

func (h *Handler) Dashboard(c *gin.Context) {
	user := middleware.UserFrom(c)

	uploads, bookmarks, err := h.service.Dashboard(c.Request.Context(), user.ID)
	if err != nil {
		render.ServerError(c)
		return
	}

	render.HTML(c, http.StatusOK, "dashboard.html", gin.H{
		"UserNotes":     uploads,
		"UserBookmarks": bookmarks,
	})
}
