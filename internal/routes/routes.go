package routes

import (
	"net/http"

	"github.com/marjuksajid/SkillChronicle/internal/app"
	"github.com/marjuksajid/SkillChronicle/internal/handler"
	"github.com/marjuksajid/SkillChronicle/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler()
	auth := handler.NewAuthHandler(app.AuthService, app.Sessions)
	goal := handler.NewGoalHandler(app.GoalService)
	skill := handler.NewSkillHandler(app.SkillService)
	progress := handler.NewProgressHandler(app.GoalService)
	view := handler.NewViewHandler(app.GoalService, app.SkillService)

	mux := http.NewServeMux()

	// Auth flow (rate limited)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("GET /login", middleware.RequireGuest(auth.LoginPage))
	mux.HandleFunc("POST /login", rateLimiter(middleware.RequireGuest(auth.Login)))
	mux.HandleFunc("GET /register", middleware.RequireGuest(auth.RegisterPage))
	mux.HandleFunc("POST /register", rateLimiter(middleware.RequireGuest(auth.Register)))
	mux.HandleFunc("GET /logout", middleware.RequireAuth(auth.Logout))

	// Pages behind the auth gate
	mux.HandleFunc("GET /{$}", middleware.RequireAuth(home.HomePage))
	mux.HandleFunc("GET /add_goal", middleware.RequireAuth(goal.AddGoalPage))
	mux.HandleFunc("POST /add_goal", middleware.RequireAuth(goal.AddGoal))
	mux.HandleFunc("GET /add_skill", middleware.RequireAuth(skill.AddSkillPage))
	mux.HandleFunc("POST /add_skill", middleware.RequireAuth(skill.AddSkill))
	mux.HandleFunc("GET /add_progress", middleware.RequireAuth(progress.AddProgressPage))
	mux.HandleFunc("POST /add_progress", middleware.RequireAuth(progress.AddProgress))
	mux.HandleFunc("GET /view", middleware.RequireAuth(view.ViewPage))

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.Session(app.Sessions, app.UserRepo),
		middleware.WithURLPath,
	)

	return handler
}
