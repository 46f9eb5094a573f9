package routes

import (
	"net/http"

	"coachsite/internal/app"
	"coachsite/internal/handler"
	"coachsite/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler(app.SubscriberService)
	auth := handler.NewAuthHandler(app.AuthService)
	blog := handler.NewBlogHandler(app.BlogService)
	coaching := handler.NewCoachingHandler(app.CoachingService)
	contact := handler.NewContactHandler(app.MailService)

	// Credential and contact submissions share one per-IP limiter
	rateLimiter := middleware.RateLimitForms()

	mux := http.NewServeMux()

	// Home + subscribe
	mux.HandleFunc("GET /{$}", home.HomePage)
	mux.HandleFunc("POST /{$}", home.Subscribe)

	// Auth
	mux.HandleFunc("GET /register", middleware.RequireGuest(auth.RegisterPage))
	mux.HandleFunc("POST /register", rateLimiter(middleware.RequireGuest(auth.Register)))
	mux.HandleFunc("GET /login", middleware.RequireGuest(auth.LoginPage))
	mux.HandleFunc("POST /login", rateLimiter(middleware.RequireGuest(auth.Login)))
	mux.HandleFunc("GET /logout", auth.Logout)

	// Content
	mux.HandleFunc("GET /life_coaching", coaching.LifeCoachingPage)
	mux.HandleFunc("GET /blog", blog.ListPosts)
	mux.HandleFunc("GET /blog/{postId}", blog.ShowPost)

	// Post authoring requires a session. The route table is the
	// authorization policy: anonymous visitors never reach the form.
	mux.HandleFunc("GET /new_post", middleware.RequireAuth(blog.NewPostPage))
	mux.HandleFunc("POST /new_post", middleware.RequireAuth(blog.CreatePost))

	// Contact
	mux.HandleFunc("GET /contact", contact.ContactPage)
	mux.HandleFunc("POST /contact", rateLimiter(contact.SendMessage))

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	h := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.AuthMiddleware(app.AuthService),
		middleware.WithURLPath,
	)

	return h
}
