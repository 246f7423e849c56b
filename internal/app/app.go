package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/marjuksajid/SkillChronicle/internal/config"
	"github.com/marjuksajid/SkillChronicle/internal/db"
	"github.com/marjuksajid/SkillChronicle/internal/repository"
	"github.com/marjuksajid/SkillChronicle/internal/service"
	"github.com/marjuksajid/SkillChronicle/internal/session"
)

type App struct {
	Cfg          *config.Config
	DB           *sqlx.DB
	Sessions     *session.Manager
	UserRepo     repository.UserRepository
	AuthService  *service.AuthService
	GoalService  *service.GoalService
	SkillService *service.SkillService
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

	// Sessions (server-side, file-backed)
	sessions, err := session.NewManager(cfg.SessionSecret, cfg.SessionDir, cfg.SessionMaxAge, cfg.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	progressRepository := repository.NewProgressRepository(database)
	skillRepository := repository.NewSkillRepository(database)

	// Services
	authService := service.NewAuthService(userRepository)
	goalService := service.NewGoalService(goalRepository, progressRepository)
	skillService := service.NewSkillService(skillRepository)

	return &App{
		Cfg:          cfg,
		DB:           database,
		Sessions:     sessions,
		UserRepo:     userRepository,
		AuthService:  authService,
		GoalService:  goalService,
		SkillService: skillService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
