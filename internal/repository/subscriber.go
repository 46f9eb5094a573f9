package repository

import (
	"github.com/jmoiron/sqlx"

	"coachsite/internal/model"
)

type SubscriberRepository interface {
	Create(subscriber *model.Subscriber) error
	Count() (int64, error)
}

type subscriberRepository struct {
	db *sqlx.DB
}

func NewSubscriberRepository(db *sqlx.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) Create(subscriber *model.Subscriber) error {
	query := `INSERT INTO subscribers (email, created_at) VALUES ($1, $2)`

	result, err := r.db.Exec(query, subscriber.Email, subscriber.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	id, err := result.LastInsertId()
	if err == nil {
		subscriber.ID = id
	}

	return nil
}

func (r *subscriberRepository) Count() (int64, error) {
	var count int64
	err := r.db.Get(&count, `SELECT COUNT(*) FROM subscribers`)
	return count, err
}
