package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Clark-Hu/movie-catalog/internal/domain"
)

// MoviesRepository reads movie rows.
type MoviesRepository struct {
	pool *pgxpool.Pool
}

const movieColumns = `title, genre, release_year, rating`

// List returns every movie in insertion order.
func (r *MoviesRepository) List(ctx context.Context) ([]domain.Movie, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+movieColumns+` FROM movies ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]domain.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return movies, nil
}

func scanMovie(row pgx.Row) (domain.Movie, error) {
	var movie domain.Movie
	if err := row.Scan(&movie.Title, &movie.Genre, &movie.Year, &movie.Rating); err != nil {
		return domain.Movie{}, err
	}
	return movie, nil
}
