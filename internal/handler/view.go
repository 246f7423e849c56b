package handler

import (
	"log/slog"
	"net/http"

	"github.com/marjuksajid/SkillChronicle/internal/ctxkeys"
	"github.com/marjuksajid/SkillChronicle/internal/model"
	"github.com/marjuksajid/SkillChronicle/internal/service"
	"github.com/marjuksajid/SkillChronicle/internal/ui"
)

type ViewHandler struct {
	goalService  *service.GoalService
	skillService *service.SkillService
}

func NewViewHandler(goalService *service.GoalService, skillService *service.SkillService) *ViewHandler {
	return &ViewHandler{
		goalService:  goalService,
		skillService: skillService,
	}
}

// progressRow pairs a progress entry with the title of the goal it
// references, resolved from the already-loaded goals. An entry whose
// goal_id matches nothing the user owns shows a placeholder.
type progressRow struct {
	Progress  *model.Progress
	GoalTitle string
}

type overview struct {
	Goals      []*model.Goal
	Progresses []progressRow
	Skills     []*model.Skill
}

// ViewPage lists all goals, progress entries and skills for the current
// user. Three independent queries; nothing cross-validates a progress
// entry's goal reference.
func (h *ViewHandler) ViewPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goals, err := h.goalService.Goals(user.ID)
	if err != nil {
		slog.Error("failed to load goals", "error", err, "user_id", user.ID)
		ui.RenderError(w, r, http.StatusInternalServerError, "Failed to load your chronicle. Please try again.")
		return
	}

	progresses, err := h.goalService.Progresses(user.ID)
	if err != nil {
		slog.Error("failed to load progress entries", "error", err, "user_id", user.ID)
		ui.RenderError(w, r, http.StatusInternalServerError, "Failed to load your chronicle. Please try again.")
		return
	}

	skills, err := h.skillService.Skills(user.ID)
	if err != nil {
		slog.Error("failed to load skills", "error", err, "user_id", user.ID)
		ui.RenderError(w, r, http.StatusInternalServerError, "Failed to load your chronicle. Please try again.")
		return
	}

	titles := make(map[string]string, len(goals))
	for _, g := range goals {
		titles[g.ID] = g.Title
	}

	rows := make([]progressRow, 0, len(progresses))
	for _, p := range progresses {
		title, ok := titles[p.GoalID]
		if !ok {
			title = "(unknown goal)"
		}
		rows = append(rows, progressRow{Progress: p, GoalTitle: title})
	}

	ui.Render(w, r, http.StatusOK, "view.html", ui.View{
		Title: "Overview",
		Data: overview{
			Goals:      goals,
			Progresses: rows,
			Skills:     skills,
		},
	})
}
