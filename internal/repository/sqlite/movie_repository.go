package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"filmlog/internal/domain"
	"filmlog/internal/repository"
)

const createSavedMoviesTable = `
CREATE TABLE IF NOT EXISTS saved_movies (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id),
	movie_id INTEGER NOT NULL,
	title TEXT NOT NULL,
	year TEXT NOT NULL DEFAULT '',
	poster TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	UNIQUE(user_id, movie_id)
);
`

type SavedMovieRepository struct {
	db *sql.DB
}

func NewSavedMovieRepository(db *sql.DB) repository.SavedMovieRepository {
	return &SavedMovieRepository{db: db}
}

func (r *SavedMovieRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createSavedMoviesTable); err != nil {
		return fmt.Errorf("create saved_movies table: %w", err)
	}
	return nil
}

func (r *SavedMovieRepository) Create(ctx context.Context, movie *domain.SavedMovie) (int64, error) {
	if movie.CreatedAt.IsZero() {
		movie.CreatedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO saved_movies (user_id, movie_id, title, year, poster, created_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		movie.UserID,
		movie.MovieID,
		movie.Title,
		movie.Year,
		movie.Poster,
		movie.CreatedAt,
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return 0, repository.ErrDuplicateMovie
		}
		return 0, fmt.Errorf("insert saved movie: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("saved movie last insert id: %w", err)
	}
	movie.ID = id
	return id, nil
}

func (r *SavedMovieRepository) ListByUser(ctx context.Context, userID int64) ([]domain.SavedMovie, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, movie_id, title, year, poster, created_at
FROM saved_movies
WHERE user_id = ?
ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list saved movies: %w", err)
	}
	defer rows.Close()

	var movies []domain.SavedMovie
	for rows.Next() {
		var m domain.SavedMovie
		if err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.MovieID,
			&m.Title,
			&m.Year,
			&m.Poster,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan saved movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saved movies: %w", err)
	}
	return movies, nil
}

func (r *SavedMovieRepository) DeleteByUserAndMovie(ctx context.Context, userID, movieID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM saved_movies
WHERE user_id = ? AND movie_id = ?`,
		userID,
		movieID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete saved movie: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("saved movie rows affected: %w", err)
	}
	return affected, nil
}
