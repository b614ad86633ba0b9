// Package catalog keeps movies in memory keyed by title, together with named,
// ordered sub-collections of those movies.
//
// A Catalog is not safe for concurrent use. Callers that share one across
// goroutines must guard it themselves.
package catalog

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/Clark-Hu/movie-catalog/internal/domain"
)

// Catalog owns the primary title mapping and the named collections.
type Catalog struct {
	movies map[string]domain.Movie
	order  []string

	collections     map[string][]domain.Movie
	collectionOrder []string
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		movies:      make(map[string]domain.Movie),
		collections: make(map[string][]domain.Movie),
	}
}

// AddMovie inserts the movie, replacing any movie with the same title.
// A replaced movie keeps its position in iteration order.
func (c *Catalog) AddMovie(movie domain.Movie) {
	if _, ok := c.movies[movie.Title]; !ok {
		c.order = append(c.order, movie.Title)
	}
	c.movies[movie.Title] = movie
}

// RemoveMovie deletes the movie with the given title. Collections that hold
// the movie keep their entry.
func (c *Catalog) RemoveMovie(title string) error {
	if _, ok := c.movies[title]; !ok {
		return fmt.Errorf("%w: %q", ErrMovieNotFound, title)
	}
	delete(c.movies, title)
	if i := slices.Index(c.order, title); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	return nil
}

// CreateCollection registers an empty collection under name.
func (c *Catalog) CreateCollection(name string) error {
	if _, ok := c.collections[name]; ok {
		return fmt.Errorf("%w: %q", ErrCollectionExists, name)
	}
	c.collections[name] = []domain.Movie{}
	c.collectionOrder = append(c.collectionOrder, name)
	return nil
}

// AddToCollection appends the catalog movie with the given title to a collection.
func (c *Catalog) AddToCollection(collection, title string) error {
	members, movie, err := c.lookupMember(collection, title)
	if err != nil {
		return err
	}
	if slices.Contains(members, movie) {
		return fmt.Errorf("%w: %q in %q", ErrAlreadyInCollection, title, collection)
	}
	c.collections[collection] = append(members, movie)
	return nil
}

// RemoveFromCollection drops the first entry equal to the catalog movie with
// the given title.
func (c *Catalog) RemoveFromCollection(collection, title string) error {
	members, movie, err := c.lookupMember(collection, title)
	if err != nil {
		return err
	}
	i := slices.Index(members, movie)
	if i < 0 {
		return fmt.Errorf("%w: %q in %q", ErrNotInCollection, title, collection)
	}
	c.collections[collection] = slices.Delete(members, i, i+1)
	return nil
}

func (c *Catalog) lookupMember(collection, title string) ([]domain.Movie, domain.Movie, error) {
	members, ok := c.collections[collection]
	if !ok {
		return nil, domain.Movie{}, fmt.Errorf("%w: %q", ErrCollectionNotFound, collection)
	}
	movie, ok := c.movies[title]
	if !ok {
		return nil, domain.Movie{}, fmt.Errorf("%w: %q", ErrMovieNotFound, title)
	}
	return members, movie, nil
}

// Collection returns a copy of the named collection. Unknown names yield an
// empty slice.
func (c *Catalog) Collection(name string) []domain.Movie {
	members := c.collections[name]
	out := make([]domain.Movie, len(members))
	copy(out, members)
	return out
}

// Collections lists collection names in creation order.
func (c *Catalog) Collections() []string {
	return slices.Clone(c.collectionOrder)
}

// SearchByTitle looks a movie up by its exact title.
func (c *Catalog) SearchByTitle(title string) (domain.Movie, bool) {
	movie, ok := c.movies[title]
	return movie, ok
}

// SearchByGenre returns the movies whose genre matches ignoring case.
func (c *Catalog) SearchByGenre(genre string) []domain.Movie {
	return c.filter(func(m domain.Movie) bool {
		return strings.EqualFold(m.Genre, genre)
	})
}

// SearchByYear returns the movies released in year.
func (c *Catalog) SearchByYear(year int) []domain.Movie {
	return c.filter(func(m domain.Movie) bool {
		return m.Year == year
	})
}

func (c *Catalog) filter(match func(domain.Movie) bool) []domain.Movie {
	out := make([]domain.Movie, 0)
	for movie := range c.All() {
		if match(movie) {
			out = append(out, movie)
		}
	}
	return out
}

// All yields every movie front to back. Each range over the sequence works on
// a copy taken when iteration starts, so the catalog may be changed while
// ranging.
func (c *Catalog) All() iter.Seq[domain.Movie] {
	return func(yield func(domain.Movie) bool) {
		snapshot := make([]domain.Movie, 0, len(c.order))
		for _, title := range c.order {
			snapshot = append(snapshot, c.movies[title])
		}
		for _, movie := range snapshot {
			if !yield(movie) {
				return
			}
		}
	}
}

// Len reports the number of movies in the primary mapping.
func (c *Catalog) Len() int {
	return len(c.movies)
}
