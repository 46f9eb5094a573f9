package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"coachsite/internal/ctxkeys"
	"coachsite/internal/db"
	"coachsite/internal/model"
	"coachsite/internal/repository"
	"coachsite/internal/service"
)

func TestRequireAuth(t *testing.T) {
	next := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	t.Run("anonymous is redirected to login", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireAuth(next)(rec, httptest.NewRequest(http.MethodGet, "/new_post", nil))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("authenticated passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/new_post", nil)
		ctx := ctxkeys.WithUser(req.Context(), &model.User{ID: 1, Email: "ada@example.com"})
		rec := httptest.NewRecorder()
		RequireAuth(next)(rec, req.WithContext(ctx))

		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireGuest(t *testing.T) {
	next := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	ctx := ctxkeys.WithUser(req.Context(), &model.User{ID: 1})
	rec := httptest.NewRecorder()
	RequireGuest(next)(rec, req.WithContext(ctx))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/blog", rec.Header().Get("Location"))
}

func TestAuthMiddleware(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	database, err := db.Init("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	authService := service.NewAuthService(repository.NewUserRepository(database), "test-secret", time.Hour, false)
	user, err := authService.Register("Ada", "ada@example.com", "correct horse battery")
	require.NoError(t, err)

	var seen *model.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxkeys.User(r.Context())
	})
	mw := AuthMiddleware(authService)(next)

	t.Run("valid session resolves user", func(t *testing.T) {
		token, err := authService.GenerateSession(user)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: authService.SessionCookieName(), Value: token})

		seen = nil
		mw.ServeHTTP(httptest.NewRecorder(), req)

		require.NotNil(t, seen)
		require.Equal(t, user.ID, seen.ID)
		require.Empty(t, seen.PasswordHash)
	})

	t.Run("garbage token continues unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: authService.SessionCookieName(), Value: "garbage"})

		seen = &model.User{}
		mw.ServeHTTP(httptest.NewRecorder(), req)

		require.Nil(t, seen)
	})

	t.Run("no cookie continues unauthenticated", func(t *testing.T) {
		seen = &model.User{}
		mw.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.Nil(t, seen)
	})
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		require.True(t, limiter.Allow("1.2.3.4"))
	}
	require.False(t, limiter.Allow("1.2.3.4"))

	// Another IP is unaffected
	require.True(t, limiter.Allow("5.6.7.8"))
}

func TestCSRFProtection(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := CSRFProtection(next)

	t.Run("GET issues a token cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		cookies := rec.Result().Cookies()
		require.NotEmpty(t, cookies)
		require.Equal(t, "csrf_token", cookies[0].Name)
	})

	t.Run("POST without token is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", nil))

		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("POST with matching cookie and field passes", func(t *testing.T) {
		// Fetch a token first
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		token := rec.Result().Cookies()[0].Value

		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.AddCookie(&http.Cookie{Name: "csrf_token", Value: token})
		req.Header.Set("X-CSRF-Token", token)

		rec = httptest.NewRecorder()
		mw.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})
}
