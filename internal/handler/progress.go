package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/marjuksajid/SkillChronicle/internal/ctxkeys"
	"github.com/marjuksajid/SkillChronicle/internal/model"
	"github.com/marjuksajid/SkillChronicle/internal/service"
	"github.com/marjuksajid/SkillChronicle/internal/ui"
)

type ProgressHandler struct {
	goalService *service.GoalService
}

func NewProgressHandler(goalService *service.GoalService) *ProgressHandler {
	return &ProgressHandler{
		goalService: goalService,
	}
}

type progressForm struct {
	Detail string
	GoalID string
	Goals  []*model.Goal
}

func (h *ProgressHandler) AddProgressPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	form := progressForm{}
	h.fillGoals(&form, user.ID)

	ui.Render(w, r, http.StatusOK, "add_progress.html", ui.View{
		Title: "Log progress",
		Data:  form,
	})
}

func (h *ProgressHandler) AddProgress(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	detail := strings.TrimSpace(r.FormValue("progress_detail"))
	goalID := strings.TrimSpace(r.FormValue("goal_id"))

	// The entry is stamped with the session user and the current time;
	// goal_id is accepted as submitted.
	_, err := h.goalService.RecordProgress(user.ID, goalID, detail)
	if err != nil {
		if errors.Is(err, service.ErrDetailRequired) || errors.Is(err, service.ErrGoalRequired) {
			form := progressForm{Detail: detail, GoalID: goalID}
			h.fillGoals(&form, user.ID)

			msg := "Details required."
			if errors.Is(err, service.ErrGoalRequired) {
				msg = "Please choose a goal."
			}

			ui.Render(w, r, http.StatusUnprocessableEntity, "add_progress.html", ui.View{
				Title: "Log progress",
				Error: msg,
				Data:  form,
			})
			return
		}

		slog.Error("failed to record progress", "error", err, "user_id", user.ID, "goal_id", goalID)
		ui.RenderError(w, r, http.StatusInternalServerError, "There was an error with your request. Please try again.")
		return
	}

	http.Redirect(w, r, "/view", http.StatusSeeOther)
}

// fillGoals loads the user's goals for the form's select box. A load
// failure leaves the list empty rather than failing the page.
func (h *ProgressHandler) fillGoals(form *progressForm, userID string) {
	goals, err := h.goalService.Goals(userID)
	if err != nil {
		slog.Error("failed to load goals for progress form", "error", err, "user_id", userID)
		return
	}
	form.Goals = goals
}
