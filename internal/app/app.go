package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"coachsite/internal/config"
	"coachsite/internal/db"
	"coachsite/internal/repository"
	"coachsite/internal/service"
)

// App is the explicit application context: every handler dependency is
// wired here once, and Close releases the persistence connection.
type App struct {
	Cfg               *config.Config
	DB                *sqlx.DB
	AuthService       *service.AuthService
	SubscriberService *service.SubscriberService
	BlogService       *service.BlogService
	CoachingService   *service.CoachingService
	MailService       *service.MailService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	subscriberRepository := repository.NewSubscriberRepository(database)
	postRepository := repository.NewPostRepository(database)

	// Services
	authService := service.NewAuthService(
		userRepository,
		cfg.SessionSecret,
		cfg.SessionExpiry,
		cfg.IsProduction(),
	)
	subscriberService := service.NewSubscriberService(subscriberRepository)
	blogService := service.NewBlogService(postRepository)
	coachingService := service.NewCoachingService(cfg.ContentPath)
	mailService := service.NewMailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.ContactEmail,
		cfg.MailTimeout,
		cfg.IsDevelopment(),
	)

	return &App{
		Cfg:               cfg,
		DB:                database,
		AuthService:       authService,
		SubscriberService: subscriberService,
		BlogService:       blogService,
		CoachingService:   coachingService,
		MailService:       mailService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
