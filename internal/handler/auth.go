package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"coachsite/internal/forms"
	"coachsite/internal/service"
	"coachsite/internal/ui"
)

type authHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *authHandler {
	return &authHandler{
		authService: authService,
	}
}

type registerData struct {
	Form    forms.RegisterForm
	Errors  forms.Errors
	Message string
}

type loginData struct {
	Form    forms.LoginForm
	Errors  forms.Errors
	Message string
}

func (h *authHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "register.html", registerData{})
}

func (h *authHandler) Register(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := forms.NewRegisterForm(r.PostForm)
	fieldErrors := forms.Validate(form)
	if fieldErrors.Any() {
		ui.Render(w, r, "register.html", registerData{Form: form, Errors: fieldErrors})
		return
	}

	user, err := h.authService.Register(form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			ui.Render(w, r, "register.html", registerData{Form: form, Message: "You've already signed up with that email, log in instead."})
			return
		}
		slog.Error("registration failed", "error", err, "email", form.Email)
		ui.Render(w, r, "register.html", registerData{Form: form, Message: "Something went wrong. Please try again."})
		return
	}

	slog.Info("user registered", "user_id", user.ID, "email", user.Email)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *authHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "login.html", loginData{})
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := forms.NewLoginForm(r.PostForm)
	fieldErrors := forms.Validate(form)
	if fieldErrors.Any() {
		ui.Render(w, r, "login.html", loginData{Form: form, Errors: fieldErrors})
		return
	}

	user, err := h.authService.Login(form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownEmail):
			ui.Render(w, r, "login.html", loginData{Form: form, Message: "That email does not exist, please try again."})
		case errors.Is(err, service.ErrBadPassword):
			ui.Render(w, r, "login.html", loginData{Form: form, Message: "Password incorrect, please try again."})
		default:
			slog.Error("login failed", "error", err, "email", form.Email)
			ui.Render(w, r, "login.html", loginData{Form: form, Message: "Something went wrong. Please try again."})
		}
		return
	}

	token, err := h.authService.GenerateSession(user)
	if err != nil {
		slog.Error("failed to generate session", "error", err, "user_id", user.ID)
		ui.Render(w, r, "login.html", loginData{Form: form, Message: "Something went wrong. Please try again."})
		return
	}

	h.authService.SetSessionCookie(w, token, time.Now().Add(h.authService.SessionExpiry()))

	slog.Info("user logged in", "user_id", user.ID, "email", user.Email)
	http.Redirect(w, r, "/blog", http.StatusSeeOther)
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
