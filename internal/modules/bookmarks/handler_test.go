package bookmarks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studsafe/internal/database"
	"studsafe/internal/domain"
	"studsafe/internal/middleware"
	"studsafe/internal/repository"
	"studsafe/web"
)

const testToken = "test-session-token"

type tokenResolver struct {
	user *domain.User
}

func (r tokenResolver) UserFromToken(ctx context.Context, rawToken string) (*domain.User, error) {
	if rawToken == testToken {
		return r.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func setupBookmarkRouter(t *testing.T) (*gin.Engine, *gorm.DB, *domain.Note) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	user := &domain.User{Username: "aigerim", FirstName: "Aigerim", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	subject := &domain.Subject{Name: "Math", Icon: "📐"}
	require.NoError(t, db.Create(subject).Error)
	note := &domain.Note{
		Title:      "Algebra Basics",
		SubjectID:  subject.ID,
		UploadedBy: user.ID,
		FilePath:   "notes/2026/01/01/a.pdf",
		FileName:   "a.pdf",
	}
	require.NoError(t, db.Create(note).Error)

	handler := NewHandler(NewService(
		repository.NewNoteRepository(db),
		repository.NewBookmarkRepository(db),
	))

	r := gin.New()
	tmpl, err := web.Templates()
	require.NoError(t, err)
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.CurrentUser(tokenResolver{user: user}))

	protected := r.Group("/", middleware.RequireAuth())
	handler.RegisterProtectedRoutes(protected)

	return r, db, note
}

func toggle(r *gin.Engine, path, referer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: testToken})
	if referer != "" {
		req.Header.Set("Referer", referer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Toggle(t *testing.T) {
	r, db, note := setupBookmarkRouter(t)

	w := toggle(r, "/bookmark/1", "")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/browse", w.Header().Get("Location"))

	var count int64
	require.NoError(t, db.Model(&domain.Bookmark{}).Where("note_id = ?", note.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	w = toggle(r, "/bookmark/1", "")
	require.Equal(t, http.StatusFound, w.Code)

	require.NoError(t, db.Model(&domain.Bookmark{}).Where("note_id = ?", note.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestHandler_Toggle_ReturnsToReferer(t *testing.T) {
	r, _, _ := setupBookmarkRouter(t)

	w := toggle(r, "/bookmark/1", "http://example.com/browse?subject=1")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/browse?subject=1", w.Header().Get("Location"))
}

func TestHandler_Toggle_OffsiteRefererFallsBack(t *testing.T) {
	r, _, _ := setupBookmarkRouter(t)

	w := toggle(r, "/bookmark/1", "http://evil.example/phish")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/browse", w.Header().Get("Location"))
}

func TestHandler_Toggle_NoteMissing(t *testing.T) {
	r, _, _ := setupBookmarkRouter(t)

	w := toggle(r, "/bookmark/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Toggle_RequiresLogin(t *testing.T) {
	r, _, _ := setupBookmarkRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/bookmark/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next=%2Fbookmark%2F1", w.Header().Get("Location"))
}
