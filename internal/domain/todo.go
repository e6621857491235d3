package domain

import "time"

// Todo is the business entity. It does not depend on gin or Postgres.
// UpdatedAt doubles as the optimistic-concurrency token: an edit carries the
// value it read, and the store rejects the write if the row moved on since.
type Todo struct {
	ID          int64
	Title       string
	Description string
	DueDate     *time.Time
	IsCompleted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
