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

type SkillHandler struct {
	skillService *service.SkillService
}

func NewSkillHandler(skillService *service.SkillService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
	}
}

func (h *SkillHandler) AddSkillPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, http.StatusOK, "add_skill.html", ui.View{
		Title: "Add skill",
		Data:  goalForm{},
	})
}

func (h *SkillHandler) AddSkill(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	// The skill form reuses the goal field names: title maps to the
	// skill's name.
	title := strings.TrimSpace(r.FormValue("title"))
	description := strings.TrimSpace(r.FormValue("description"))

	form := goalForm{Title: title, Description: description}

	_, err := h.skillService.Create(user.ID, title, description)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			ui.Render(w, r, http.StatusUnprocessableEntity, "add_skill.html", ui.View{
				Title: "Add skill",
				Error: "Title is required.",
				Data:  form,
			})
			return
		}

		slog.Error("failed to create skill", "error", err, "user_id", user.ID)
		ui.RenderError(w, r, http.StatusInternalServerError, "There was an error with your request. Please try again.")
		return
	}

	http.Redirect(w, r, "/view", http.StatusSeeOther)
}
