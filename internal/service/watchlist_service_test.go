package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"filmlog/internal/domain"
	"filmlog/internal/repository"
)

type MockSavedMovieRepo struct {
	mock.Mock
}

func (m *MockSavedMovieRepo) Init(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSavedMovieRepo) Create(ctx context.Context, movie *domain.SavedMovie) (int64, error) {
	args := m.Called(ctx, movie)
	if args.Error(1) == nil {
		movie.ID = args.Get(0).(int64)
	}
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSavedMovieRepo) ListByUser(ctx context.Context, userID int64) ([]domain.SavedMovie, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedMovie), args.Error(1)
}

func (m *MockSavedMovieRepo) DeleteByUserAndMovie(ctx context.Context, userID, movieID int64) (int64, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Get(0).(int64), args.Error(1)
}

func TestSave(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockSavedMovieRepo)
		svc := NewWatchlistService(repo)

		repo.On("Create", ctx, mock.AnythingOfType("*domain.SavedMovie")).Return(int64(5), nil).Once()

		movie, err := svc.Save(ctx, 1, SaveInput{MovieID: 603, Title: "The Matrix", Year: "1999"})
		require.NoError(t, err)
		assert.Equal(t, int64(5), movie.ID)
		assert.Equal(t, int64(1), movie.UserID)
		assert.Equal(t, int64(603), movie.MovieID)
		repo.AssertExpectations(t)
	})

	t.Run("MissingFields", func(t *testing.T) {
		repo := new(MockSavedMovieRepo)
		svc := NewWatchlistService(repo)

		_, err := svc.Save(ctx, 1, SaveInput{})
		verr, ok := AsValidation(err)
		require.True(t, ok)
		assert.Len(t, verr.Violations, 2)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("AlreadySaved", func(t *testing.T) {
		repo := new(MockSavedMovieRepo)
		svc := NewWatchlistService(repo)

		repo.On("Create", ctx, mock.AnythingOfType("*domain.SavedMovie")).Return(int64(0), repository.ErrDuplicateMovie).Once()

		_, err := svc.Save(ctx, 1, SaveInput{MovieID: 603, Title: "The Matrix"})
		_, ok := AsValidation(err)
		assert.True(t, ok)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSavedMovieRepo)
	svc := NewWatchlistService(repo)

	saved := []domain.SavedMovie{
		{ID: 2, UserID: 1, MovieID: 604, Title: "The Matrix Reloaded"},
		{ID: 1, UserID: 1, MovieID: 603, Title: "The Matrix"},
	}
	repo.On("ListByUser", ctx, int64(1)).Return(saved, nil).Once()

	movies, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, saved, movies)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockSavedMovieRepo)
		svc := NewWatchlistService(repo)

		repo.On("DeleteByUserAndMovie", ctx, int64(1), int64(603)).Return(int64(1), nil).Once()

		assert.NoError(t, svc.Delete(ctx, 1, 603))
	})

	t.Run("NotOwnedLooksLikeMissing", func(t *testing.T) {
		// bob deleting alice's movie matches zero rows, same as a movie that
		// was never saved
		repo := new(MockSavedMovieRepo)
		svc := NewWatchlistService(repo)

		repo.On("DeleteByUserAndMovie", ctx, int64(2), int64(603)).Return(int64(0), nil).Once()

		assert.ErrorIs(t, svc.Delete(ctx, 2, 603), ErrNotFound)
	})
}
