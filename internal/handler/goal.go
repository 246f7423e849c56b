package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/marjuksajid/SkillChronicle/internal/ctxkeys"
	"github.com/marjuksajid/SkillChronicle/internal/service"
	"github.com/marjuksajid/SkillChronicle/internal/ui"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

type goalForm struct {
	Title       string
	Description string
}

func (h *GoalHandler) AddGoalPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, http.StatusOK, "add_goal.html", ui.View{
		Title: "Add goal",
		Data:  goalForm{},
	})
}

func (h *GoalHandler) AddGoal(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	title := strings.TrimSpace(r.FormValue("title"))
	description := strings.TrimSpace(r.FormValue("description"))

	form := goalForm{Title: title, Description: description}

	_, err := h.goalService.Create(user.ID, title, description)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			ui.Render(w, r, http.StatusUnprocessableEntity, "add_goal.html", ui.View{
				Title: "Add goal",
				Error: "Title is required.",
				Data:  form,
			})
			return
		}

		slog.Error("failed to create goal", "error", err, "user_id", user.ID)
		ui.RenderError(w, r, http.StatusInternalServerError, "There was an error adding the goal. Please try again.")
		return
	}

	http.Redirect(w, r, "/view", http.StatusSeeOther)
}
