package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobboard/internal/handlers"
	"jobboard/internal/middleware"
	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/internal/services"
	"jobboard/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8000")
	viper.SetDefault("JWT_SECRET", "change-me")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_PATH", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("JOB_STRICT_UPDATE", false)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")
	strictUpdate := viper.GetBool("JOB_STRICT_UPDATE")

	// --- Initialize Repositories ---
	// Postgres when DATABASE_URL is set, SQLite when DB_PATH is set,
	// in-memory otherwise.
	userRepo, jobRepo, err := buildRepositories()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	}

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, jwtSecret)
	jobService := services.NewJobService(jobRepo, publisher, strictUpdate)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	jobHandler := handlers.NewJobHandler(jobService)

	// --- Initialize Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": "hello"})
	})

	authRequired := middleware.AuthRequired(authService)
	authHandler.RegisterRoutes(app, authRequired)
	jobHandler.RegisterRoutes(app, authRequired)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// buildRepositories selects the storage backend from configuration.
func buildRepositories() (repositories.UserRepository, repositories.JobRepository, error) {
	var db *gorm.DB
	var err error

	switch {
	case viper.GetString("DATABASE_URL") != "":
		db, err = gorm.Open(postgres.Open(viper.GetString("DATABASE_URL")), &gorm.Config{})
	case viper.GetString("DB_PATH") != "":
		db, err = gorm.Open(sqlite.Open(viper.GetString("DB_PATH")), &gorm.Config{})
	default:
		log.Println("No database configured, using in-memory repositories")
		return repositories.NewMemoryUserRepository(), repositories.NewMemoryJobRepository(), nil
	}
	if err != nil {
		return nil, nil, err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Job{}); err != nil {
		return nil, nil, err
	}

	return repositories.NewGORMUserRepository(db), repositories.NewGORMJobRepository(db), nil
}
