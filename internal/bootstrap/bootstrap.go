package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campusconn/backend/docs" // Import generated swagger docs
	appControllers "github.com/campusconn/backend/internal/app/controllers"
	appMigrations "github.com/campusconn/backend/internal/app/migrations"
	appRepos "github.com/campusconn/backend/internal/app/repositories"
	appRoutes "github.com/campusconn/backend/internal/app/routes"
	appServices "github.com/campusconn/backend/internal/app/services"
	"github.com/campusconn/backend/internal/config"
	"github.com/campusconn/backend/internal/db"
	appMiddleware "github.com/campusconn/backend/internal/middleware"
	"github.com/campusconn/backend/internal/pkg/cache"
	"github.com/campusconn/backend/internal/pkg/filestorage"
	"github.com/campusconn/backend/internal/pkg/helpers"
	"github.com/campusconn/backend/internal/pkg/logger"
	"github.com/campusconn/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	UserService          *appServices.UserService
	RoomService          *appServices.RoomService
	MessageService       *appServices.MessageService
	CampusInfoService    *appServices.CampusInfoService
	FeedService          *appServices.FeedService
	UserController       *appControllers.UserController
	RoomController       *appControllers.RoomController
	MessageController    *appControllers.MessageController
	CampusInfoController *appControllers.CampusInfoController
	FeedController       *appControllers.FeedController
	SessionMiddleware    *appMiddleware.SessionMiddleware
	Repos                *appRepos.Repositories
	Cache                *cache.Cache
	Logger               zerolog.Logger
	FileStorage          *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// .env is optional; real deployments pass environment directly
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// A partial seed should not block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// SetupCache connects the Redis cache. An empty address disables caching
// without failing startup.
func SetupCache(cfg *config.Config, lgr zerolog.Logger) (*cache.Cache, error) {
	ttl := helpers.ParseDuration(cfg.Redis.CacheTTL, 10*time.Minute)
	c, err := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, ttl)
	if err != nil {
		lgr.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to Redis")
		return nil, err
	}
	if c == nil {
		lgr.Info().Msg("Redis address not configured, caching disabled")
	}
	return c, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, cacheClient *cache.Cache, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Cache: cacheClient}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Base URL must match the static file serving path in server.go
	var err error
	baseURL := cfg.Server.PublicURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.RoomService = appServices.NewRoomService(deps.Repos.RoomRepository, deps.Repos.UserRepository)
	deps.MessageService = appServices.NewMessageService(deps.Repos.MessageRepository, deps.Repos.RoomRepository, deps.Repos.UserRepository)
	deps.CampusInfoService = appServices.NewCampusInfoService(deps.Repos.CampusInfoRepository, cacheClient)
	deps.FeedService = appServices.NewFeedService(deps.Repos.FeedRepository, deps.Repos.UserRepository)

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(cfg.Session.Secret, cfg.Session.Issuer)

	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.RoomController = appControllers.NewRoomController(deps.RoomService)
	deps.MessageController = appControllers.NewMessageController(deps.MessageService, deps.FileStorage)
	deps.CampusInfoController = appControllers.NewCampusInfoController(deps.CampusInfoService)
	deps.FeedController = appControllers.NewFeedController(deps.FeedService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.UserController,
		deps.RoomController,
		deps.MessageController,
		deps.CampusInfoController,
		deps.FeedController,
		deps.SessionMiddleware,
	)

	return router
}
