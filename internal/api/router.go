package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/moviehub/movies-api/docs"
	"github.com/moviehub/movies-api/internal/api/handler"
	"github.com/moviehub/movies-api/internal/api/middleware"
	"github.com/moviehub/movies-api/internal/core/domain"
	"github.com/moviehub/movies-api/internal/core/service"
	"github.com/moviehub/movies-api/internal/infrastructure/catalog"
	"github.com/moviehub/movies-api/internal/infrastructure/config"
	mongodb "github.com/moviehub/movies-api/internal/infrastructure/db/mongo"
	redisdb "github.com/moviehub/movies-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("movies_api"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	movieRepo := mongodb.NewMovieRepository(db)
	movieCache := redisdb.NewMovieCache(rdb)
	catalogClient := catalog.NewClient(cfg.CatalogURL)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, service.NewBcryptHasher(), tokenService, log)
	movieService := service.NewMovieService(movieRepo, movieCache, catalogClient, log)

	authHandler := handler.NewAuthHandler(authService)
	movieHandler := handler.NewMovieHandler(movieService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Movie routes ---
	// Per-route role requirements; admin-only mutations, reads for any
	// authenticated role. "/movies/seed" must be registered before "/:id".
	movies := e.Group("/movies", middleware.Auth(tokenService))
	movies.GET("", movieHandler.FindAll, middleware.RBAC(domain.RoleUser, domain.RoleAdmin))
	movies.GET("/seed", movieHandler.Seed, middleware.RBAC(domain.RoleAdmin))
	movies.GET("/:id", movieHandler.FindOne, middleware.RBAC(domain.RoleUser, domain.RoleAdmin))
	movies.POST("", movieHandler.Create, middleware.RBAC(domain.RoleAdmin))
	movies.PATCH("/:id", movieHandler.Update, middleware.RBAC(domain.RoleAdmin))
	movies.DELETE("/:id", movieHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	// --- Operational surface (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
