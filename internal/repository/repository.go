package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Clark-Hu/movie-catalog/internal/domain"
	"github.com/Clark-Hu/movie-catalog/internal/store"
)

// Repository aggregates the read-only catalog tables.
type Repository struct {
	Movies      *MoviesRepository
	Collections *CollectionsRepository
}

// New constructs a Repository backed by the provided store.
func New(st *store.Store) *Repository {
	return NewWithPool(st.Pool())
}

// NewWithPool allows constructing repositories directly from a pgx pool.
func NewWithPool(pool *pgxpool.Pool) *Repository {
	return &Repository{
		Movies:      &MoviesRepository{pool: pool},
		Collections: &CollectionsRepository{pool: pool},
	}
}

// Load reads every movie and collection into a snapshot, making the
// repository usable as a seed source.
func (r *Repository) Load(ctx context.Context) (domain.Snapshot, error) {
	movies, err := r.Movies.List(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load movies: %w", err)
	}
	collections, err := r.Collections.List(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load collections: %w", err)
	}
	return domain.Snapshot{Movies: movies, Collections: collections}, nil
}
