package handler

import (
	"log/slog"
	"net/http"

	"coachsite/internal/forms"
	"coachsite/internal/service"
	"coachsite/internal/ui"
)

type contactHandler struct {
	notifier service.ContactNotifier
}

func NewContactHandler(notifier service.ContactNotifier) *contactHandler {
	return &contactHandler{
		notifier: notifier,
	}
}

type contactData struct {
	Form    forms.ContactForm
	Errors  forms.Errors
	Message string
}

func (h *contactHandler) ContactPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "contact.html", contactData{})
}

func (h *contactHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := forms.NewContactForm(r.PostForm)
	fieldErrors := forms.Validate(form)
	if fieldErrors.Any() {
		ui.Render(w, r, "contact.html", contactData{Form: form, Errors: fieldErrors})
		return
	}

	// One attempt; a failed relay stays on the form so the visitor
	// knows the message did not go out.
	err = h.notifier.SendContactMessage(r.Context(), form.Email, form.Subject, form.Body)
	if err != nil {
		slog.Error("contact message failed", "error", err, "sender", form.Email)
		ui.Render(w, r, "contact.html", contactData{Form: form, Message: "Your message could not be sent. Please try again later."})
		return
	}

	slog.Info("contact message sent", "sender", form.Email, "subject", form.Subject)
	http.Redirect(w, r, "/life_coaching", http.StatusSeeOther)
}
