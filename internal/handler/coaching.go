package handler

import (
	"html/template"
	"log/slog"
	"net/http"

	"coachsite/internal/service"
	"coachsite/internal/ui"
)

type coachingHandler struct {
	coachingService *service.CoachingService
}

func NewCoachingHandler(coachingService *service.CoachingService) *coachingHandler {
	return &coachingHandler{
		coachingService: coachingService,
	}
}

type coachingData struct {
	Page    *service.CoachingPage
	Content template.HTML
}

func (h *coachingHandler) LifeCoachingPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.coachingService.Page("life_coaching")
	if err != nil {
		slog.Error("failed to load coaching page", "error", err)
		// Content file missing is a deployment problem, not a 404
		page = &service.CoachingPage{Title: "Life Coaching"}
	}

	ui.Render(w, r, "life_coaching.html", coachingData{
		Page:    page,
		Content: template.HTML(page.Content),
	})
}
