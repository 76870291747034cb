package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/dewmyth/screenwatch/pkg/domain"
)

// MovieRepository handles movie-related database operations
type MovieRepository struct {
	db *sqlx.DB
}

// movieSQL represents a movie for SQL operations
type movieSQL struct {
	ID        int64     `db:"id"`
	MovieID   string    `db:"movie_id"`
	Name      string    `db:"name"`
	Variant   string    `db:"variant"`
	Category  string    `db:"category"`
	Position  int       `db:"position"`
	Tag       string    `db:"tag"`
	CreatedAt time.Time `db:"created_at"`
}

func (m *movieSQL) toDomain() *domain.Movie {
	return &domain.Movie{
		ID:        m.ID,
		MovieID:   m.MovieID,
		Name:      m.Name,
		Variant:   m.Variant,
		Category:  m.Category,
		Position:  m.Position,
		Tag:       m.Tag,
		CreatedAt: m.CreatedAt,
	}
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(database *sqlx.DB) *MovieRepository {
	return &MovieRepository{db: database}
}

// CreateMovie inserts a new movie record. CreatedAt is assigned here, at
// persistence time, not at scrape time.
func (r *MovieRepository) CreateMovie(ctx context.Context, movie *domain.Movie) error {
	if movie.MovieID == "" {
		return fmt.Errorf("movie id is empty")
	}

	movie.CreatedAt = time.Now().UTC()
	sqlMovie := &movieSQL{
		MovieID:   movie.MovieID,
		Name:      movie.Name,
		Variant:   movie.Variant,
		Category:  movie.Category,
		Position:  movie.Position,
		Tag:       movie.Tag,
		CreatedAt: movie.CreatedAt,
	}

	query := `
		INSERT INTO movies (movie_id, name, variant, category, position, tag, created_at)
		VALUES (:movie_id, :name, :variant, :category, :position, :tag, :created_at)
	`

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		result, err := r.db.NamedExecContext(ctx, query, sqlMovie)
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("create movie: %w", err)}
		}

		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get movie id: %w", err)}
		}
		movie.ID = id

		return nil
	})
}

// MovieExists checks if a movie with the given source identifier is already stored
func (r *MovieRepository) MovieExists(ctx context.Context, movieID string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM movies WHERE movie_id = ?)", movieID)
	if err != nil {
		return false, fmt.Errorf("check movie exists: %w", err)
	}
	return exists, nil
}

// GetMovies returns all stored movies, newest first
func (r *MovieRepository) GetMovies(ctx context.Context) ([]domain.Movie, error) {
	var sqlMovies []movieSQL
	err := r.db.SelectContext(ctx, &sqlMovies, "SELECT * FROM movies ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}

	movies := make([]domain.Movie, 0, len(sqlMovies))
	for i := range sqlMovies {
		movies = append(movies, *sqlMovies[i].toDomain())
	}
	return movies, nil
}
