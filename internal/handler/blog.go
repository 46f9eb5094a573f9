package handler

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"coachsite/internal/forms"
	"coachsite/internal/model"
	"coachsite/internal/repository"
	"coachsite/internal/service"
	"coachsite/internal/ui"
)

type blogHandler struct {
	blogService *service.BlogService
}

func NewBlogHandler(blogService *service.BlogService) *blogHandler {
	return &blogHandler{
		blogService: blogService,
	}
}

type blogListData struct {
	Posts []*model.BlogPost
}

type postData struct {
	Post *model.BlogPost
	Body template.HTML
}

type newPostData struct {
	Form    forms.PostForm
	Errors  forms.Errors
	Message string
}

func (h *blogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogService.Posts()
	if err != nil {
		slog.Error("failed to load posts", "error", err)
		http.Error(w, "Failed to load blog posts", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, "blog.html", blogListData{Posts: posts})
}

func (h *blogHandler) ShowPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("postId"), 10, 64)
	if err != nil {
		ui.RenderStatus(w, r, http.StatusNotFound, "not_found.html", nil)
		return
	}

	post, err := h.blogService.Post(id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			ui.RenderStatus(w, r, http.StatusNotFound, "not_found.html", nil)
			return
		}
		slog.Error("failed to load post", "error", err, "post_id", id)
		http.Error(w, "Failed to load blog post", http.StatusInternalServerError)
		return
	}

	// Body came through the markdown renderer, which emits escaped HTML
	ui.Render(w, r, "post.html", postData{Post: post, Body: template.HTML(post.HTMLBody)})
}

func (h *blogHandler) NewPostPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "new_post.html", newPostData{})
}

func (h *blogHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := forms.NewPostForm(r.PostForm)
	fieldErrors := forms.Validate(form)
	if fieldErrors.Any() {
		ui.Render(w, r, "new_post.html", newPostData{Form: form, Errors: fieldErrors})
		return
	}

	post, err := h.blogService.CreatePost(form.Title, form.Subtitle, form.Body, form.Author, form.ImageURL)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateTitle) {
			ui.Render(w, r, "new_post.html", newPostData{Form: form, Message: "A post with that title already exists."})
			return
		}
		slog.Error("failed to create post", "error", err, "title", form.Title)
		ui.Render(w, r, "new_post.html", newPostData{Form: form, Message: "Something went wrong. Please try again."})
		return
	}

	slog.Info("post created", "post_id", post.ID, "title", post.Title)
	http.Redirect(w, r, "/blog", http.StatusSeeOther)
}
