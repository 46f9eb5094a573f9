package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"coachsite/internal/db"
	"coachsite/internal/model"
)

// newTestDB opens a throwaway SQLite database with the real schema.
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

func TestUserRepository(t *testing.T) {
	database := newTestDB(t)
	repo := NewUserRepository(database)

	user := &model.User{
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$fakehash",
		CreatedAt:    time.Now(),
	}

	err := repo.Create(user)
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	t.Run("duplicate email rejected", func(t *testing.T) {
		dup := &model.User{
			Name:         "Other",
			Email:        "ada@example.com",
			PasswordHash: "$2a$10$otherhash",
			CreatedAt:    time.Now(),
		}
		err := repo.Create(dup)
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("by email", func(t *testing.T) {
		got, err := repo.ByEmail("ada@example.com")
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)
		require.Equal(t, "Ada", got.Name)
	})

	t.Run("by email not found", func(t *testing.T) {
		_, err := repo.ByEmail("nobody@example.com")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("by id", func(t *testing.T) {
		got, err := repo.ByID(user.ID)
		require.NoError(t, err)
		require.Equal(t, "ada@example.com", got.Email)
	})

	t.Run("by id not found", func(t *testing.T) {
		_, err := repo.ByID(9999)
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestSubscriberRepository(t *testing.T) {
	database := newTestDB(t)
	repo := NewSubscriberRepository(database)

	err := repo.Create(&model.Subscriber{Email: "fan@example.com", CreatedAt: time.Now()})
	require.NoError(t, err)

	count, err := repo.Count()
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	// Second signup with the same email must not create a second row
	err = repo.Create(&model.Subscriber{Email: "fan@example.com", CreatedAt: time.Now()})
	require.ErrorIs(t, err, ErrDuplicateEmail)

	count, err = repo.Count()
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestPostRepository(t *testing.T) {
	database := newTestDB(t)
	repo := NewPostRepository(database)

	first := &model.BlogPost{
		Title:     "First Post",
		Subtitle:  "Getting started",
		Date:      "January 2, 2026",
		Body:      "Hello.",
		Author:    "Ada",
		ImageURL:  "https://example.com/a.png",
		CreatedAt: time.Now(),
	}
	second := &model.BlogPost{
		Title:     "Second Post",
		Subtitle:  "Keeping on",
		Date:      "January 3, 2026",
		Body:      "Still here.",
		Author:    "Ada",
		ImageURL:  "https://example.com/b.png",
		CreatedAt: time.Now(),
	}

	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	t.Run("duplicate title rejected", func(t *testing.T) {
		dup := &model.BlogPost{
			Title:     "First Post",
			Subtitle:  "Again",
			Date:      "January 4, 2026",
			Body:      "Copy.",
			Author:    "Ada",
			ImageURL:  "https://example.com/c.png",
			CreatedAt: time.Now(),
		}
		err := repo.Create(dup)
		require.ErrorIs(t, err, ErrDuplicateTitle)
	})

	t.Run("list in insertion order", func(t *testing.T) {
		posts, err := repo.List()
		require.NoError(t, err)
		require.Len(t, posts, 2)
		require.Equal(t, "First Post", posts[0].Title)
		require.Equal(t, "Second Post", posts[1].Title)
	})

	t.Run("by id", func(t *testing.T) {
		got, err := repo.ByID(first.ID)
		require.NoError(t, err)
		require.Equal(t, "First Post", got.Title)
	})

	t.Run("by id not found", func(t *testing.T) {
		_, err := repo.ByID(12345)
		require.ErrorIs(t, err, ErrPostNotFound)
	})
}
