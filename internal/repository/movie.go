package repository

import (
	"context"

	"filmlog/internal/domain"
)

// SavedMovieRepository manages the per-user saved movie associations.
type SavedMovieRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, movie *domain.SavedMovie) (int64, error)
	// ListByUser returns the user's saved movies, newest first.
	ListByUser(ctx context.Context, userID int64) ([]domain.SavedMovie, error)
	// DeleteByUserAndMovie removes the association matching both keys and
	// reports how many rows matched.
	DeleteByUserAndMovie(ctx context.Context, userID, movieID int64) (int64, error)
}
