package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"filmoteca_backend/internal/config"
	"filmoteca_backend/internal/database"
	"filmoteca_backend/internal/handlers"
	"filmoteca_backend/internal/imageprocessor"
	"filmoteca_backend/internal/logger"
	"filmoteca_backend/internal/middleware"
	"filmoteca_backend/internal/repositories"
	"filmoteca_backend/internal/routes"
	"filmoteca_backend/internal/services"
	"filmoteca_backend/internal/storage"
	"filmoteca_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate schema", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the gin engine with every middleware, handler and
// route wired. The test suite calls this directly against its own db.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, storageInstance)
	appHandlers := initializeHandlers(serviceContainer)

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.DBMiddleware(gormDB),
	)
	ginRouter.MaxMultipartMemory = cfg.Upload.MaxSize

	// uploaded images are served back from the same path their URLs
	// advertise
	if local, ok := storageInstance.(*storage.LocalStorage); ok {
		ginRouter.Static("/public", local.BasePath())
	}

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage) *services.ServiceContainer {
	movieRepo := repositories.NewMovieRepository()
	personRepo := repositories.NewPersonRepository()
	castRepo := repositories.NewCastRepository()

	processor := imageprocessor.NewProcessor(cfg.Upload.ImageQuality)
	images := services.NewImageStore(storageInstance, processor)

	return &services.ServiceContainer{
		MovieService:  services.NewMovieService(movieRepo, castRepo, images),
		PersonService: services.NewPersonService(personRepo, images),
		CastService:   services.NewCastService(castRepo),
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		MovieHandler:  handlers.NewMovieHandler(baseHandler, container.MovieService),
		PersonHandler: handlers.NewPersonHandler(baseHandler, container.PersonService),
		CastHandler:   handlers.NewCastHandler(baseHandler, container.CastService),
	}
}
