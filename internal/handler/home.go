package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"coachsite/internal/forms"
	"coachsite/internal/service"
	"coachsite/internal/ui"
)

type homeHandler struct {
	subscriberService *service.SubscriberService
}

func NewHomeHandler(subscriberService *service.SubscriberService) *homeHandler {
	return &homeHandler{
		subscriberService: subscriberService,
	}
}

type homeData struct {
	Form       forms.SubscribeForm
	Errors     forms.Errors
	Message    string
	Subscribed bool
}

func (h *homeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "home.html", homeData{
		Subscribed: r.URL.Query().Get("subscribed") == "1",
	})
}

func (h *homeHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := forms.NewSubscribeForm(r.PostForm)
	fieldErrors := forms.Validate(form)
	if fieldErrors.Any() {
		ui.Render(w, r, "home.html", homeData{Form: form, Errors: fieldErrors})
		return
	}

	_, err = h.subscriberService.Subscribe(form.Email)
	if err != nil {
		if errors.Is(err, service.ErrAlreadySubscribed) {
			ui.Render(w, r, "home.html", homeData{Form: form, Message: "That email is already subscribed."})
			return
		}
		slog.Error("subscribe failed", "error", err, "email", form.Email)
		ui.Render(w, r, "home.html", homeData{Form: form, Message: "Something went wrong. Please try again."})
		return
	}

	slog.Info("new subscriber", "email", form.Email)
	http.Redirect(w, r, "/?subscribed=1", http.StatusSeeOther)
}

func (h *homeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	ui.RenderStatus(w, r, http.StatusNotFound, "not_found.html", nil)
}
