package handler

import (
	"net/http"

	"github.com/marjuksajid/SkillChronicle/internal/ui"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, http.StatusOK, "home.html", ui.View{
		Title: "Home",
	})
}

func (h *HomeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, http.StatusNotFound, "not_found.html", ui.View{
		Title: "Not found",
	})
}
