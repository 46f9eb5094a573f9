package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"coachsite/internal/model"
)

type PostRepository interface {
	Create(post *model.BlogPost) error
	ByID(id int64) (*model.BlogPost, error)
	List() ([]*model.BlogPost, error)
}

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *model.BlogPost) error {
	query := `INSERT INTO blog_posts (title, subtitle, date, body, author, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	result, err := r.db.Exec(query, post.Title, post.Subtitle, post.Date, post.Body, post.Author, post.ImageURL, post.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateTitle
		}
		return err
	}

	id, err := result.LastInsertId()
	if err == nil {
		post.ID = id
	}

	return nil
}

func (r *postRepository) ByID(id int64) (*model.BlogPost, error) {
	post := &model.BlogPost{}
	query := `SELECT * FROM blog_posts WHERE id = $1`

	err := r.db.Get(post, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	return post, nil
}

// List returns all posts in insertion order.
func (r *postRepository) List() ([]*model.BlogPost, error) {
	posts := []*model.BlogPost{}
	query := `SELECT * FROM blog_posts ORDER BY id ASC`

	err := r.db.Select(&posts, query)
	if err != nil {
		return nil, err
	}

	return posts, nil
}
