package seed

import (
	"context"

	"github.com/Clark-Hu/movie-catalog/internal/domain"
)

// SampleSource serves the built-in sample snapshot.
type SampleSource struct{}

// Load implements Source.
func (SampleSource) Load(context.Context) (domain.Snapshot, error) {
	return Sample(), nil
}

// Sample returns a fresh copy of the demo data set.
func Sample() domain.Snapshot {
	return domain.Snapshot{
		Movies: []domain.Movie{
			domain.NewMovie("The Shawshank Redemption", "Drama", 1994, 9.3),
			domain.NewMovie("Pulp Fiction", "Crime", 1994, 8.9),
			domain.NewMovie("Forrest Gump", "Drama", 1994, 8.8),
			domain.NewMovie("Groundhog Day", "Comedy", 1993, 8.0),
			domain.NewMovie("The Green Mile", "Drama", 1999, 8.6),
			domain.NewMovie("Fight Club", "Drama", 1999, 8.8),
			domain.NewMovie("The Matrix", "Sci-Fi", 1999, 8.7),
			domain.NewMovie("The Big Lebowski", "Comedy", 1998, 8.1),
		},
		Collections: []domain.CollectionSeed{
			{
				Name:   "Dramas of the 90s",
				Titles: []string{"The Shawshank Redemption", "Forrest Gump", "The Green Mile", "Fight Club"},
			},
			{
				Name:   "Class of 1999",
				Titles: []string{"The Matrix", "Fight Club", "The Green Mile"},
			},
		},
	}
}
