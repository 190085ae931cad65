package service

import (
	"context"
	"errors"

	"filmlog/internal/domain"
	"filmlog/internal/repository"
)

// SaveInput carries the fields of a save-movie request.
type SaveInput struct {
	MovieID int64
	Title   string
	Year    string
	Poster  string
}

// WatchlistService manages a user's saved movies. Every operation is scoped
// to the owning user id.
type WatchlistService interface {
	Save(ctx context.Context, userID int64, in SaveInput) (*domain.SavedMovie, error)
	List(ctx context.Context, userID int64) ([]domain.SavedMovie, error)
	Delete(ctx context.Context, userID, movieID int64) error
}

type watchlistService struct {
	movies repository.SavedMovieRepository
}

func NewWatchlistService(movies repository.SavedMovieRepository) WatchlistService {
	return &watchlistService{movies: movies}
}

func (s *watchlistService) Save(ctx context.Context, userID int64, in SaveInput) (*domain.SavedMovie, error) {
	var violations []string
	if in.MovieID <= 0 {
		violations = append(violations, "movie_id is required")
	}
	if in.Title == "" {
		violations = append(violations, "title is required")
	}
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	movie := &domain.SavedMovie{
		UserID:  userID,
		MovieID: in.MovieID,
		Title:   in.Title,
		Year:    in.Year,
		Poster:  in.Poster,
	}
	if _, err := s.movies.Create(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrDuplicateMovie) {
			return nil, &ValidationError{Violations: []string{"movie already saved"}}
		}
		return nil, err
	}
	return movie, nil
}

func (s *watchlistService) List(ctx context.Context, userID int64) ([]domain.SavedMovie, error) {
	return s.movies.ListByUser(ctx, userID)
}

func (s *watchlistService) Delete(ctx context.Context, userID, movieID int64) error {
	affected, err := s.movies.DeleteByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		return err
	}
	// Zero rows means the movie was never saved or belongs to someone else.
	// The caller cannot tell which.
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
