package model

import (
	"time"
)

// Comment exists in the schema but no page reads or writes it yet.
// It carries no reference to a post or a user.
type Comment struct {
	ID        int64     `db:"id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}
