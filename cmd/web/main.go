package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"studsafe/internal/config"
	"studsafe/internal/database"
	"studsafe/internal/middleware"
	"studsafe/internal/modules/auth"
	"studsafe/internal/modules/bookmarks"
	"studsafe/internal/modules/notes"
	"studsafe/internal/modules/site"
	"studsafe/internal/pkg/render"
	"studsafe/internal/repository"
	"studsafe/internal/storage"
	"studsafe/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	store := storage.NewFileSystemStore(cfg.UploadDir)

	authService := auth.NewService(userRepo, sessionRepo, cfg.SessionSecret, cfg.SessionTTL)
	authHandler := auth.NewHandler(authService, cfg.CookieSecure)

	notesService := notes.NewService(noteRepo, subjectRepo, bookmarkRepo, store)
	notesHandler := notes.NewHandler(notesService)

	bookmarksService := bookmarks.NewService(noteRepo, bookmarkRepo)
	bookmarksHandler := bookmarks.NewHandler(bookmarksService)

	siteHandler := site.NewHandler(noteRepo, subjectRepo)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	tmpl, err := web.Templates()
	if err != nil {
		log.Fatal(err)
	}
	r.SetHTMLTemplate(tmpl)

	r.Use(middleware.CurrentUser(authService))

	siteHandler.RegisterRoutes(r)
	authHandler.RegisterRoutes(r)
	notesHandler.RegisterPublicRoutes(r)

	protected := r.Group("/")
	protected.Use(middleware.RequireAuth())
	{
		notesHandler.RegisterProtectedRoutes(protected)
		bookmarksHandler.RegisterProtectedRoutes(protected)
	}

	r.NoRoute(render.NotFound)
	r.HandleMethodNotAllowed = true
	r.NoMethod(render.MethodNotAllowed)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
