package domain

import "time"

// SavedMovie links a user to one catalog movie they saved.
// Ownership is fixed at creation; reads and deletes always filter by UserID.
type SavedMovie struct {
	ID        int64
	UserID    int64
	MovieID   int64
	Title     string
	Year      string
	Poster    string
	CreatedAt time.Time
}
