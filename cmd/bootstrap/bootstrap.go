package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"health-assessment-service/config"
	deliveryHttp "health-assessment-service/internal/delivery/http"
	"health-assessment-service/internal/delivery/http/handler"
	"health-assessment-service/internal/delivery/http/middleware"
	domainRepo "health-assessment-service/internal/domain/repository"
	"health-assessment-service/internal/infrastructure/cache"
	"health-assessment-service/internal/infrastructure/database"
	"health-assessment-service/internal/repository"
	"health-assessment-service/internal/service"
	"health-assessment-service/internal/usecase"
	"health-assessment-service/pkg/jwt"
	"health-assessment-service/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Registry    *service.SessionRegistry
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(ctx context.Context) (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	app := &App{
		Config: cfg,
		Log:    NewLogger(cfg.App),
	}
	app.Log.Info("Configuration loaded successfully")

	doctorRepo, err := app.doctorRepository(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	tokenRepo, err := app.sessionTokenRepository(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Server = app.initializeServer(doctorRepo, tokenRepo)

	return app, nil
}

// NewLogger configures a JSON logrus logger at the configured level.
func NewLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// OpenDatabase connects to Postgres and makes sure the doctors table exists
// and holds the built-in catalog.
func OpenDatabase(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	db, err := database.NewPostgresConnection(cfg.DB, log, cfg.IsDev())
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	if err := repository.SeedDoctors(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to seed doctors: %w", err)
	}
	log.Info("Doctor catalog ready")
	return db, nil
}

func (app *App) doctorRepository(ctx context.Context) (domainRepo.DoctorRepository, error) {
	if app.Config.Mock.DoctorSource != config.DoctorSourcePostgres {
		return repository.NewDoctorCatalogRepository(), nil
	}

	db, err := OpenDatabase(ctx, app.Config, app.Log)
	if err != nil {
		return nil, err
	}
	app.DB = db
	return repository.NewDoctorRepository(db), nil
}

func (app *App) sessionTokenRepository(ctx context.Context) (domainRepo.SessionTokenRepository, error) {
	if !app.Config.Redis.Enabled {
		app.Log.Info("Redis disabled, keeping session tokens in memory")
		return repository.NewMemorySessionTokenRepository(), nil
	}

	redisClient, err := cache.NewRedisClient(ctx, app.Config.Redis, app.Log)
	if err != nil {
		return nil, err
	}
	app.RedisClient = redisClient
	return repository.NewRedisSessionTokenRepository(redisClient), nil
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(doctorRepo domainRepo.DoctorRepository, tokenRepo domainRepo.SessionTokenRepository) *http.Server {
	cfg := app.Config
	log := app.Log

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize services
	authService := service.NewAuthService(log, customValidator, service.Latency{
		Delay:       cfg.Mock.AuthDelay,
		FailureRate: cfg.Mock.FailureRate,
	})
	assessmentService := service.NewAssessmentService(log, service.NewPredictor(cfg.Mock.AssessmentMode), service.Latency{
		Delay:       cfg.Mock.AssessmentDelay,
		FailureRate: cfg.Mock.FailureRate,
	})
	doctorDirectory := service.NewDoctorDirectory(log, doctorRepo, service.Latency{
		Delay:       cfg.Mock.DoctorsDelay,
		FailureRate: cfg.Mock.FailureRate,
	})
	app.Registry = service.NewSessionRegistry(log, service.NewAuditService(log), cfg.Session.TTL, cfg.Session.SweepInterval)

	// Initialize usecases
	sessionUsecase := usecase.NewSessionUsecase(log, app.Registry, tokenRepo, jwtService)
	stateUsecase := usecase.NewStateUsecase(log)
	authUsecase := usecase.NewAuthUsecase(log, authService)
	healthFormUsecase := usecase.NewHealthFormUsecase(log, assessmentService)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorDirectory)
	profileUsecase := usecase.NewProfileUsecase(log)
	onboardingUsecase := usecase.NewOnboardingUsecase(log)
	dashboardUsecase := usecase.NewDashboardUsecase()

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(sessionUsecase, stateUsecase)
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	healthFormHandler := handler.NewHealthFormHandler(healthFormUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase, onboardingUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(log, jwtService, tokenRepo, app.Registry)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.HTTP.CORSOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(
		sessionHandler,
		authHandler,
		healthFormHandler,
		doctorHandler,
		profileHandler,
		dashboardHandler,
		authMiddleware,
		corsMiddleware,
		cfg.HTTP.AuthRateLimit,
	)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: router.Setup(),
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt signal
	return app.waitForShutdown(errCh)
}

// waitForShutdown blocks until an interrupt signal is received or the
// server fails to start
func (app *App) waitForShutdown(errCh <-chan error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), app.Config.HTTP.ShutdownPeriod)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
	return nil
}

// Close stops the session registry and closes all connections (database,
// redis, etc.)
func (app *App) Close() {
	if app.Registry != nil {
		app.Registry.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
