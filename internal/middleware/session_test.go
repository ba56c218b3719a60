package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studsafe/internal/domain"
)

type stubResolver struct {
	user *domain.User
	err  error
}

func (s stubResolver) UserFromToken(ctx context.Context, rawToken string) (*domain.User, error) {
	return s.user, s.err
}

func newRouter(resolver UserResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CurrentUser(resolver))
	r.GET("/public", func(c *gin.Context) {
		if u := UserFrom(c); u != nil {
			c.String(http.StatusOK, "hello "+u.Username)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	protected := r.Group("/", RequireAuth())
	protected.GET("/private", func(c *gin.Context) {
		c.String(http.StatusOK, "secret")
	})
	anon := r.Group("/", RedirectIfAuthed())
	anon.GET("/login", func(c *gin.Context) {
		c.String(http.StatusOK, "login page")
	})
	return r
}

func get(r *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCurrentUser_ValidSession(t *testing.T) {
	r := newRouter(stubResolver{user: &domain.User{ID: 1, Username: "aigerim"}})

	w := get(r, "/public", "some-token")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello aigerim", w.Body.String())
}

func TestCurrentUser_NoCookieStaysAnonymous(t *testing.T) {
	r := newRouter(stubResolver{user: &domain.User{ID: 1, Username: "aigerim"}})

	w := get(r, "/public", "")
	assert.Equal(t, "anonymous", w.Body.String())
}

func TestRequireAuth_RedirectsWithNext(t *testing.T) {
	r := newRouter(stubResolver{err: assert.AnError})

	w := get(r, "/private?tab=2", "bad-token")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next=%2Fprivate%3Ftab%3D2", w.Header().Get("Location"))
}

func TestRedirectIfAuthed(t *testing.T) {
	r := newRouter(stubResolver{user: &domain.User{ID: 1}})

	w := get(r, "/login", "token")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = get(r, "/login", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSafeNext(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/upload", "/upload"},
		{"/browse?subject=2", "/browse?subject=2"},
		{"//evil.example", "/"},
		{"https://evil.example", "/"},
		{"relative", "/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SafeNext(tt.in), "input %q", tt.in)
	}
}
