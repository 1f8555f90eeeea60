package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/deniz/alumlink/internal/app/controllers"
	appRepos "github.com/deniz/alumlink/internal/app/repositories"
	appRoutes "github.com/deniz/alumlink/internal/app/routes"
	appServices "github.com/deniz/alumlink/internal/app/services"
	"github.com/deniz/alumlink/internal/config"
	"github.com/deniz/alumlink/internal/db"
	appMiddleware "github.com/deniz/alumlink/internal/middleware"
	pkgAuth "github.com/deniz/alumlink/internal/pkg/auth"
	"github.com/deniz/alumlink/internal/pkg/filestorage"
	"github.com/deniz/alumlink/internal/pkg/helpers"
	"github.com/deniz/alumlink/internal/pkg/logger"
	"github.com/deniz/alumlink/internal/pkg/recommender"
	"github.com/deniz/alumlink/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos *appRepos.Repositories

	AuthService         *appServices.AuthService
	DirectoryService    *appServices.DirectoryService
	MentorshipService   *appServices.MentorshipService
	JobService          *appServices.JobService
	EventService        *appServices.EventService
	DonationService     *appServices.DonationService
	NotificationService *appServices.NotificationService
	AdminService        *appServices.AdminService

	AuthController         *appControllers.AuthController
	DirectoryController    *appControllers.DirectoryController
	MentorshipController   *appControllers.MentorshipController
	JobController          *appControllers.JobController
	EventController        *appControllers.EventController
	DonationController     *appControllers.DonationController
	NotificationController *appControllers.NotificationController
	AdminController        *appControllers.AdminController
	UploadController       *appControllers.UploadController

	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Recommender    *recommender.Client
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
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

// SetupDatabase connects to MongoDB, ensures indexes and seeds the alumni dataset.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.MongoDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureIndexes(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ensure indexes")
		_ = database.Close(context.Background())
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	if cfg.Seed.Alumni {
		userRepo := appRepos.NewUserMongoRepository(database.Database)
		if err := seed.CreateDefaultData(ctx, userRepo, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to seed alumni dataset, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.MongoDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Database)

	// Initialize file storage; baseURL must match the static file serving path
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.ServerBaseURL()+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Recommender = recommender.NewClient(recommender.Config{
		BaseURL: cfg.AIService.BaseURL,
		Timeout: helpers.ParseDuration(cfg.AIService.Timeout, 5*time.Second),
	}, lgr)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, deps.FileStorage, lgr)
	deps.DirectoryService = appServices.NewDirectoryService(deps.Repos.UserRepository)
	deps.MentorshipService = appServices.NewMentorshipService(
		deps.Repos.MentorshipRepository,
		deps.Repos.UserRepository,
		deps.Recommender,
		lgr,
	)
	deps.JobService = appServices.NewJobService(deps.Repos.JobRepository)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository)
	deps.DonationService = appServices.NewDonationService(deps.Repos.DonationRepository)
	deps.NotificationService = appServices.NewNotificationService(deps.Repos.NotificationRepository)
	deps.AdminService = appServices.NewAdminService(deps.Repos.UserRepository, deps.Repos.MentorshipRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.DirectoryController = appControllers.NewDirectoryController(deps.DirectoryService, lgr)
	deps.MentorshipController = appControllers.NewMentorshipController(deps.MentorshipService, lgr)
	deps.JobController = appControllers.NewJobController(deps.JobService, lgr)
	deps.EventController = appControllers.NewEventController(deps.EventService, lgr)
	deps.DonationController = appControllers.NewDonationController(deps.DonationService, lgr)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, lgr)
	deps.UploadController = appControllers.NewUploadController(deps.FileStorage, lgr)

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

	router := gin.Default()
	router.Use(appMiddleware.CORS())

	// Serve uploaded files
	router.Static("/uploads", cfg.Server.StoragePath)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.DirectoryController,
		deps.MentorshipController,
		deps.JobController,
		deps.EventController,
		deps.DonationController,
		deps.NotificationController,
		deps.AdminController,
		deps.UploadController,
		deps.AuthMiddleware,
	)

	return router
}
