package repository

import (
	"errors"
	"strings"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrPostNotFound   = errors.New("blog post not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrDuplicateTitle = errors.New("title already exists")
)

// isUniqueViolation detects a unique constraint violation
// (works for both SQLite and PostgreSQL)
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value")
}
