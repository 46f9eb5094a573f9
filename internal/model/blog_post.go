package model

import (
	"time"
)

type BlogPost struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Subtitle  string    `db:"subtitle"`
	Date      string    `db:"date"` // display date, e.g. "January 2, 2006"
	Body      string    `db:"body"` // markdown source
	Author    string    `db:"author"`
	ImageURL  string    `db:"image_url"`
	CreatedAt time.Time `db:"created_at"`

	// Rendered from Body for the detail page (not in database)
	HTMLBody string `db:"-"`
}
