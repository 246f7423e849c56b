package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/marjuksajid/SkillChronicle/internal/service"
	"github.com/marjuksajid/SkillChronicle/internal/session"
	"github.com/marjuksajid/SkillChronicle/internal/ui"
	"github.com/marjuksajid/SkillChronicle/internal/validation"
)

type AuthHandler struct {
	authService *service.AuthService
	sessions    *session.Manager
}

func NewAuthHandler(authService *service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

type loginForm struct {
	Username string
}

type registerForm struct {
	Username string
	Email    string
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, http.StatusOK, "login.html", ui.View{
		Title: "Log in",
		Data:  loginForm{},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	form := loginForm{Username: username}

	if username == "" || password == "" {
		ui.Render(w, r, http.StatusUnprocessableEntity, "login.html", ui.View{
			Title: "Log in",
			Error: "Please fill in all the fields.",
			Data:  form,
		})
		return
	}

	user, err := h.authService.Login(username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same message for unknown username and wrong password
			ui.Render(w, r, http.StatusUnauthorized, "login.html", ui.View{
				Title: "Log in",
				Error: "Invalid username or password.",
				Data:  form,
			})
			return
		}

		slog.Error("login failed", "error", err, "username", username)
		ui.RenderError(w, r, http.StatusInternalServerError, "There was an error with your request. Please try again.")
		return
	}

	err = h.sessions.SignIn(w, r, user)
	if err != nil {
		slog.Error("failed to establish session", "error", err, "user_id", user.ID)
		ui.RenderError(w, r, http.StatusInternalServerError, "There was an error with your request. Please try again.")
		return
	}

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, http.StatusOK, "register.html", ui.View{
		Title: "Register",
		Data:  registerForm{},
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	form := registerForm{Username: username, Email: email}

	if username == "" || email == "" || password == "" {
		ui.Render(w, r, http.StatusUnprocessableEntity, "register.html", ui.View{
			Title: "Register",
			Error: "Please fill in all the fields.",
			Data:  form,
		})
		return
	}

	user, err := h.authService.Register(username, email, password)
	if err != nil {
		var vErr validation.Error
		switch {
		case errors.Is(err, service.ErrUsernameTaken), errors.Is(err, service.ErrEmailTaken):
			ui.Render(w, r, http.StatusConflict, "register.html", ui.View{
				Title: "Register",
				Error: capitalize(err.Error()) + ".",
				Data:  form,
			})
		case errors.As(err, &vErr):
			ui.Render(w, r, http.StatusUnprocessableEntity, "register.html", ui.View{
				Title: "Register",
				Error: capitalize(err.Error()) + ".",
				Data:  form,
			})
		default:
			slog.Error("registration failed", "error", err, "username", username)
			ui.RenderError(w, r, http.StatusInternalServerError, "There was an error with your request. Please try again.")
		}
		return
	}

	// Sign the new user in right away so the redirect to / lands on the
	// home page instead of bouncing back to /login.
	err = h.sessions.SignIn(w, r, user)
	if err != nil {
		slog.Error("failed to establish session after registration", "error", err, "user_id", user.ID)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	err := h.sessions.SignOut(w, r)
	if err != nil {
		slog.Error("failed to clear session", "error", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
