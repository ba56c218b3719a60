package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"studsafe/internal/middleware"
	"studsafe/internal/pkg/flash"
	"studsafe/internal/pkg/render"
	"studsafe/internal/pkg/validator"
)

// Handler serves the signup, login and logout pages.
type Handler struct {
	service      *Service
	cookieSecure bool
}

func NewHandler(service *Service, cookieSecure bool) *Handler {
	return &Handler{service: service, cookieSecure: cookieSecure}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	anon := r.Group("/", middleware.RedirectIfAuthed())
	{
		anon.GET("/signup", h.SignupPage)
		anon.POST("/signup", h.Signup)
		anon.GET("/login", h.LoginPage)
		anon.POST("/login", h.Login)
	}
	r.POST("/logout", h.Logout)
}

func (h *Handler) SignupPage(c *gin.Context) {
	render.HTML(c, http.StatusOK, "signup.html", gin.H{
		"Form": SignupForm{},
	})
}

func (h *Handler) Signup(c *gin.Context) {
	var form SignupForm
	_ = c.ShouldBind(&form)

	if fieldErrors := validator.Validate(form); fieldErrors != nil {
		render.HTML(c, http.StatusOK, "signup.html", gin.H{
			"Form":   form,
			"Errors": fieldErrors,
		})
		return
	}

	user, err := h.service.Register(c.Request.Context(), form)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			render.HTML(c, http.StatusOK, "signup.html", gin.H{
				"Form":   form,
				"Errors": map[string]string{"username": "A user with that username already exists."},
			})
			return
		}
		render.ServerError(c)
		return
	}

	if err := h.startSession(c, user.ID); err != nil {
		render.ServerError(c)
		return
	}

	flash.Success(c, fmt.Sprintf("Welcome to Stud Safe, %s! 🎉", user.FirstName))
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) LoginPage(c *gin.Context) {
	render.HTML(c, http.StatusOK, "login.html", gin.H{
		"Next": c.Query("next"),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var form LoginForm
	_ = c.ShouldBind(&form)

	user, err := h.service.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			render.HTML(c, http.StatusOK, "login.html", gin.H{
				"Notice":   &flash.Notice{Level: flash.LevelError, Message: "Invalid username or password."},
				"Username": form.Username,
				"Next":     c.Query("next"),
			})
			return
		}
		render.ServerError(c)
		return
	}

	if err := h.startSession(c, user.ID); err != nil {
		render.ServerError(c)
		return
	}

	flash.Success(c, fmt.Sprintf("Welcome back, %s! 👋", user.FirstName))
	c.Redirect(http.StatusFound, middleware.SafeNext(c.Query("next")))
}

func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil {
		_ = h.service.EndSession(c.Request.Context(), token)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.cookieSecure, true)

	flash.Info(c, "You have been logged out.")
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) startSession(c *gin.Context, userID int64) error {
	token, err := h.service.StartSession(
		c.Request.Context(),
		userID,
		c.Request.UserAgent(),
		c.ClientIP(),
	)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookie,
		token,
		int(h.service.SessionTTL().Seconds()),
		"/", "",
		h.cookieSecure,
		true,
	)
	return nil
}
