package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"coachsite/internal/db"
	"coachsite/internal/repository"
	"coachsite/internal/service"

	"github.com/jmoiron/sqlx"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	database, err := db.Init("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	err = db.RunMigrations(database.DB, "sqlite")
	require.NoError(t, err)

	return database
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// fakeNotifier records contact sends and optionally fails them.
type fakeNotifier struct {
	calls []struct {
		SenderEmail string
		Subject     string
		Body        string
	}
	err error
}

func (f *fakeNotifier) SendContactMessage(_ context.Context, senderEmail, subject, body string) error {
	f.calls = append(f.calls, struct {
		SenderEmail string
		Subject     string
		Body        string
	}{senderEmail, subject, body})
	return f.err
}

func TestSubscribeHandler(t *testing.T) {
	database := newTestDB(t)
	subscriberRepo := repository.NewSubscriberRepository(database)
	h := NewHomeHandler(service.NewSubscriberService(subscriberRepo))

	values := url.Values{"email": {"fan@example.com"}}

	t.Run("valid submission redirects to self", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Subscribe(rec, postForm("/", values))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/?subscribed=1", rec.Header().Get("Location"))
	})

	t.Run("duplicate email redisplays with message, no second row", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Subscribe(rec, postForm("/", values))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "already subscribed")

		count, err := subscriberRepo.Count()
		require.NoError(t, err)
		require.EqualValues(t, 1, count)
	})

	t.Run("invalid email redisplays form with error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Subscribe(rec, postForm("/", url.Values{"email": {"nope"}}))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Kindly enter correct email.")
	})
}

func TestRegisterAndLoginHandlers(t *testing.T) {
	database := newTestDB(t)
	authService := service.NewAuthService(repository.NewUserRepository(database), "test-secret", 0, false)
	h := NewAuthHandler(authService)

	register := url.Values{
		"name":     {"Ada"},
		"email":    {"ada@example.com"},
		"password": {"correct horse battery"},
	}

	t.Run("register redirects to login", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Register(rec, postForm("/register", register))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("duplicate register shows message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Register(rec, postForm("/register", register))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "already signed up")
	})

	t.Run("unknown email message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Login(rec, postForm("/login", url.Values{
			"email":    {"nobody@example.com"},
			"password": {"whatever"},
		}))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "That email does not exist")
	})

	t.Run("bad password message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Login(rec, postForm("/login", url.Values{
			"email":    {"ada@example.com"},
			"password": {"wrong"},
		}))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Password incorrect")
	})

	t.Run("login sets session cookie and redirects to blog", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Login(rec, postForm("/login", url.Values{
			"email":    {"ada@example.com"},
			"password": {"correct horse battery"},
		}))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/blog", rec.Header().Get("Location"))

		cookies := rec.Result().Cookies()
		require.NotEmpty(t, cookies)
		require.Equal(t, authService.SessionCookieName(), cookies[0].Name)
		require.NotEmpty(t, cookies[0].Value)
	})

	t.Run("logout clears cookie and redirects home", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Logout(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/", rec.Header().Get("Location"))

		cookies := rec.Result().Cookies()
		require.NotEmpty(t, cookies)
		require.Empty(t, cookies[0].Value)
	})
}

func TestCreatePostHandler(t *testing.T) {
	database := newTestDB(t)
	postRepo := repository.NewPostRepository(database)
	h := NewBlogHandler(service.NewBlogService(postRepo))

	t.Run("missing fields leave store unchanged and report each error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.CreatePost(rec, postForm("/new_post", url.Values{"title": {"Only a title"}}))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "This field is required.")

		posts, err := postRepo.List()
		require.NoError(t, err)
		require.Empty(t, posts)
	})

	t.Run("valid submission creates and redirects to listing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.CreatePost(rec, postForm("/new_post", url.Values{
			"title":    {"Hello"},
			"subtitle": {"A start"},
			"body":     {"Body text"},
			"author":   {"Ada"},
			"image":    {"https://example.com/hero.png"},
		}))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/blog", rec.Header().Get("Location"))

		posts, err := postRepo.List()
		require.NoError(t, err)
		require.Len(t, posts, 1)
		require.Equal(t, "Hello", posts[0].Title)
	})
}

func TestShowPostHandler(t *testing.T) {
	database := newTestDB(t)
	blogService := service.NewBlogService(repository.NewPostRepository(database))
	h := NewBlogHandler(blogService)

	created, err := blogService.CreatePost("Hello", "A start", "Some **bold** text.", "Ada", "https://example.com/hero.png")
	require.NoError(t, err)

	t.Run("existing post renders", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/blog/1", nil)
		req.SetPathValue("postId", "1")
		rec := httptest.NewRecorder()
		h.ShowPost(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Hello")
		require.Contains(t, rec.Body.String(), "<strong>bold</strong>")
		require.EqualValues(t, 1, created.ID)
	})

	t.Run("absent id is a not-found page, not a fault", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/blog/999", nil)
		req.SetPathValue("postId", "999")
		rec := httptest.NewRecorder()
		h.ShowPost(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id is a not-found page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/blog/abc", nil)
		req.SetPathValue("postId", "abc")
		rec := httptest.NewRecorder()
		h.ShowPost(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestContactHandler(t *testing.T) {
	values := url.Values{
		"name":    {"Visitor"},
		"email":   {"visitor@example.com"},
		"subject": {"Coaching"},
		"body":    {"I would like a session."},
	}

	t.Run("valid submission invokes notifier exactly once and redirects", func(t *testing.T) {
		notifier := &fakeNotifier{}
		h := NewContactHandler(notifier)

		rec := httptest.NewRecorder()
		h.SendMessage(rec, postForm("/contact", values))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/life_coaching", rec.Header().Get("Location"))
		require.Len(t, notifier.calls, 1)
		require.Equal(t, "visitor@example.com", notifier.calls[0].SenderEmail)
		require.Equal(t, "Coaching", notifier.calls[0].Subject)
		require.Equal(t, "I would like a session.", notifier.calls[0].Body)
	})

	t.Run("relay failure shows recoverable error, no redirect", func(t *testing.T) {
		notifier := &fakeNotifier{err: context.DeadlineExceeded}
		h := NewContactHandler(notifier)

		rec := httptest.NewRecorder()
		h.SendMessage(rec, postForm("/contact", values))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Header().Get("Location"))
		require.Contains(t, rec.Body.String(), "could not be sent")
		require.Len(t, notifier.calls, 1)
	})

	t.Run("invalid form never reaches the notifier", func(t *testing.T) {
		notifier := &fakeNotifier{}
		h := NewContactHandler(notifier)

		rec := httptest.NewRecorder()
		h.SendMessage(rec, postForm("/contact", url.Values{"email": {"bad"}}))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, notifier.calls)
	})
}
