package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Clark-Hu/movie-catalog/internal/domain"
)

// CollectionsRepository reads named collections and their members.
type CollectionsRepository struct {
	pool *pgxpool.Pool
}

// List returns collections in creation order, each with member titles in
// position order. Collections without members are included.
func (r *CollectionsRepository) List(ctx context.Context) ([]domain.CollectionSeed, error) {
	const query = `
        SELECT c.name, cm.movie_title
        FROM collections c
        LEFT JOIN collection_movies cm ON cm.collection_name = c.name
        ORDER BY c.seq, cm.position
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	collections := make([]domain.CollectionSeed, 0)
	for rows.Next() {
		var (
			name  string
			title *string
		)
		if err := rows.Scan(&name, &title); err != nil {
			return nil, err
		}
		if n := len(collections); n == 0 || collections[n-1].Name != name {
			collections = append(collections, domain.CollectionSeed{Name: name, Titles: []string{}})
		}
		if title != nil {
			last := &collections[len(collections)-1]
			last.Titles = append(last.Titles, *title)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return collections, nil
}
