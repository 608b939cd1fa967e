package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/KarolinaSkr/NotesManagement/internal/api/handler"
	"github.com/KarolinaSkr/NotesManagement/internal/api/middleware"
	"github.com/KarolinaSkr/NotesManagement/internal/core/service"
	mongodb "github.com/KarolinaSkr/NotesManagement/internal/infrastructure/db/mongo"
	redisdb "github.com/KarolinaSkr/NotesManagement/internal/infrastructure/db/redis"
	"github.com/KarolinaSkr/NotesManagement/internal/infrastructure/http/handlers"
	"github.com/KarolinaSkr/NotesManagement/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("notes"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	boardRepo := mongodb.NewBoardRepository(db)
	noteRepo := mongodb.NewNoteRepository(db)
	datasetRepo := mongodb.NewDatasetRepository(db)
	revoker := redisdb.NewTokenRevoker(rdb)

	boardService := service.NewBoardService(boardRepo, log)
	noteService := service.NewNoteService(noteRepo, boardService, log)
	lifecycle := service.NewLifecycleService(userRepo, boardRepo, datasetRepo, log)
	authService := service.NewAuthService(userRepo, lifecycle, revoker, cfg.JWTSecret, cfg.Demo.Email, cfg.JWTTTL, log)

	authHandler := handler.NewAuthHandler(authService)
	boardHandler := handler.NewBoardHandler(boardService)
	noteHandler := handler.NewNoteHandler(noteService)
	authMiddleware := middleware.Auth(cfg.JWTSecret, revoker)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, authMiddleware)

	// --- Board routes ---
	boards := e.Group("/api/boards", authMiddleware)
	boards.GET("", boardHandler.List)
	boards.POST("", boardHandler.Create)
	boards.GET("/count", boardHandler.Count)
	boards.GET("/:id", boardHandler.Get)
	boards.PUT("/:id", boardHandler.Update)
	boards.DELETE("/:id", boardHandler.Delete)

	// --- Note routes ---
	notes := e.Group("/api/notes", authMiddleware)
	notes.GET("", noteHandler.List)
	notes.POST("", noteHandler.Create)
	notes.GET("/filter", noteHandler.FilterByTag)
	notes.GET("/:id", noteHandler.Get)
	notes.PUT("/:id", noteHandler.Update)
	notes.DELETE("/:id", noteHandler.Delete)

	// --- Observability (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
