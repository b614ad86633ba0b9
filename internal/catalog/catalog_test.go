package catalog

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/Clark-Hu/movie-catalog/internal/domain"
)

func newScenarioCatalog(t testing.TB) *Catalog {
	t.Helper()
	c := New()
	c.AddMovie(domain.NewMovie("A", "drama", 1994, 9.0))
	c.AddMovie(domain.NewMovie("B", "drama", 1999, 9.1))
	c.AddMovie(domain.NewMovie("C", "comedy", 1994, 7.0))
	return c
}

func titles(movies []domain.Movie) []string {
	out := make([]string, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.Title)
	}
	return out
}

func TestAddMovieThenSearchByTitle(t *testing.T) {
	c := New()
	movie := domain.NewMovie("Heat", "crime", 1995, 8.3)
	c.AddMovie(movie)

	got, ok := c.SearchByTitle("Heat")
	if !ok {
		t.Fatalf("SearchByTitle(Heat) not found")
	}
	if got != movie {
		t.Fatalf("SearchByTitle(Heat) = %+v, want %+v", got, movie)
	}
	if _, ok := c.SearchByTitle("heat"); ok {
		t.Fatalf("title lookup should be exact")
	}
}

func TestAddMovieOverwriteKeepsPosition(t *testing.T) {
	c := newScenarioCatalog(t)
	c.AddMovie(domain.NewMovie("A", "thriller", 1994, 6.5))

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	got := titles(slices.Collect(c.All()))
	if !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Fatalf("order = %v, want [A B C]", got)
	}
	if m, _ := c.SearchByTitle("A"); m.Genre != "thriller" {
		t.Fatalf("overwrite not applied: %+v", m)
	}
}

func TestRemoveMovie(t *testing.T) {
	c := newScenarioCatalog(t)

	err := c.RemoveMovie("Nope")
	if !errors.Is(err, ErrMovieNotFound) || !errors.Is(err, ErrNotFound) {
		t.Fatalf("RemoveMovie(Nope) error = %v, want movie not found", err)
	}

	if err := c.RemoveMovie("A"); err != nil {
		t.Fatalf("RemoveMovie(A) unexpected error: %v", err)
	}
	if _, ok := c.SearchByTitle("A"); ok {
		t.Fatalf("A still present after removal")
	}
	if err := c.RemoveMovie("A"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second RemoveMovie(A) error = %v, want not found", err)
	}
}

func TestSearchByGenreIgnoresCase(t *testing.T) {
	c := newScenarioCatalog(t)

	upper := titles(c.SearchByGenre("Drama"))
	lower := titles(c.SearchByGenre("drama"))
	if !slices.Equal(upper, lower) {
		t.Fatalf("Drama=%v drama=%v, want equal", upper, lower)
	}
	if got := titles(c.SearchByGenre("DRAMA")); !slices.Equal(got, []string{"A", "B"}) {
		t.Fatalf("SearchByGenre(DRAMA) = %v, want [A B]", got)
	}
	if got := c.SearchByGenre("western"); got == nil || len(got) != 0 {
		t.Fatalf("SearchByGenre(western) = %#v, want empty slice", got)
	}
}

func TestSearchByYear(t *testing.T) {
	c := newScenarioCatalog(t)

	tests := []struct {
		year int
		want []string
	}{
		{1994, []string{"A", "C"}},
		{1999, []string{"B"}},
		{2001, []string{}},
	}
	for _, tt := range tests {
		got := titles(c.SearchByYear(tt.year))
		if !slices.Equal(got, tt.want) {
			t.Fatalf("SearchByYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestCollectionErrors(t *testing.T) {
	c := newScenarioCatalog(t)
	if err := c.CreateCollection("Dramas"); err != nil {
		t.Fatalf("CreateCollection: %v", err)
	}
	if err := c.AddToCollection("Dramas", "A"); err != nil {
		t.Fatalf("AddToCollection(A): %v", err)
	}

	tests := []struct {
		name    string
		op      func() error
		want    error
		wantAll error
	}{
		{"duplicate collection", func() error { return c.CreateCollection("Dramas") }, ErrCollectionExists, ErrAlreadyExists},
		{"add unknown collection", func() error { return c.AddToCollection("Nope", "A") }, ErrCollectionNotFound, ErrNotFound},
		{"add unknown movie", func() error { return c.AddToCollection("Dramas", "Z") }, ErrMovieNotFound, ErrNotFound},
		{"add twice", func() error { return c.AddToCollection("Dramas", "A") }, ErrAlreadyInCollection, ErrAlreadyExists},
		{"remove unknown collection", func() error { return c.RemoveFromCollection("Nope", "A") }, ErrCollectionNotFound, ErrNotFound},
		{"remove unknown movie", func() error { return c.RemoveFromCollection("Dramas", "Z") }, ErrMovieNotFound, ErrNotFound},
		{"remove non member", func() error { return c.RemoveFromCollection("Dramas", "B") }, ErrNotInCollection, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op()
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, tt.wantAll) {
				t.Fatalf("error = %v, want it to match %v", err, tt.wantAll)
			}
		})
	}

	if got := titles(c.Collection("Dramas")); !slices.Equal(got, []string{"A"}) {
		t.Fatalf("failed operations changed collection: %v", got)
	}
}

func TestCollectionOrderAndRemoval(t *testing.T) {
	c := newScenarioCatalog(t)
	if err := c.CreateCollection("Picks"); err != nil {
		t.Fatalf("CreateCollection: %v", err)
	}
	for _, title := range []string{"C", "A", "B"} {
		if err := c.AddToCollection("Picks", title); err != nil {
			t.Fatalf("AddToCollection(%s): %v", title, err)
		}
	}
	if got := titles(c.Collection("Picks")); !slices.Equal(got, []string{"C", "A", "B"}) {
		t.Fatalf("Collection(Picks) = %v, want [C A B]", got)
	}

	if err := c.RemoveFromCollection("Picks", "A"); err != nil {
		t.Fatalf("RemoveFromCollection(A): %v", err)
	}
	if got := titles(c.Collection("Picks")); !slices.Equal(got, []string{"C", "B"}) {
		t.Fatalf("Collection(Picks) = %v, want [C B]", got)
	}
	// Removed members can be added back.
	if err := c.AddToCollection("Picks", "A"); err != nil {
		t.Fatalf("re-adding A: %v", err)
	}
}

func TestCollectionReturnsCopy(t *testing.T) {
	c := newScenarioCatalog(t)
	_ = c.CreateCollection("Picks")
	_ = c.AddToCollection("Picks", "A")

	got := c.Collection("Picks")
	got[0] = domain.NewMovie("X", "x", 1, 1)
	if again := titles(c.Collection("Picks")); !slices.Equal(again, []string{"A"}) {
		t.Fatalf("caller mutation leaked into catalog: %v", again)
	}
}

func TestCollectionUnknownIsEmpty(t *testing.T) {
	c := New()
	got := c.Collection("missing")
	if got == nil || len(got) != 0 {
		t.Fatalf("Collection(missing) = %#v, want empty slice", got)
	}
	if _, ok := c.collections["missing"]; ok {
		t.Fatalf("lookup must not create a collection")
	}
}

func TestCollectionsInCreationOrder(t *testing.T) {
	c := New()
	for _, name := range []string{"b", "a", "c"} {
		if err := c.CreateCollection(name); err != nil {
			t.Fatalf("CreateCollection(%s): %v", name, err)
		}
	}
	if got := c.Collections(); !slices.Equal(got, []string{"b", "a", "c"}) {
		t.Fatalf("Collections() = %v", got)
	}
}

// Removing a movie leaves it listed in collections; the stale entry can then
// no longer be removed by title.
func TestRemoveMovieLeavesStaleCollectionEntry(t *testing.T) {
	c := newScenarioCatalog(t)
	_ = c.CreateCollection("Dramas")
	_ = c.AddToCollection("Dramas", "A")
	_ = c.AddToCollection("Dramas", "B")

	if err := c.RemoveMovie("A"); err != nil {
		t.Fatalf("RemoveMovie(A): %v", err)
	}
	if got := titles(c.Collection("Dramas")); !slices.Equal(got, []string{"A", "B"}) {
		t.Fatalf("Collection(Dramas) = %v, want stale [A B]", got)
	}
	if err := c.RemoveFromCollection("Dramas", "A"); !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("RemoveFromCollection(stale A) error = %v, want movie not found", err)
	}
}

func TestIterationYieldsEachMovieOnce(t *testing.T) {
	c := newScenarioCatalog(t)

	first := titles(slices.Collect(c.All()))
	second := titles(slices.Collect(c.All()))
	if len(first) != c.Len() {
		t.Fatalf("iteration yielded %d movies, want %d", len(first), c.Len())
	}
	if !slices.Equal(first, second) {
		t.Fatalf("iteration not repeatable: %v then %v", first, second)
	}
	seen := map[string]int{}
	for _, title := range first {
		seen[title]++
	}
	for title, n := range seen {
		if n != 1 {
			t.Fatalf("%s yielded %d times", title, n)
		}
	}
}

func TestIterationSnapshotsAtStart(t *testing.T) {
	c := newScenarioCatalog(t)

	var got []string
	for movie := range c.All() {
		got = append(got, movie.Title)
		if movie.Title == "A" {
			_ = c.RemoveMovie("B")
			c.AddMovie(domain.NewMovie("D", "drama", 2000, 8.0))
		}
	}
	if !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Fatalf("in-progress iteration = %v, want [A B C]", got)
	}
	if after := titles(slices.Collect(c.All())); !slices.Equal(after, []string{"A", "C", "D"}) {
		t.Fatalf("next iteration = %v, want [A C D]", after)
	}
}

func TestIterationStopsEarly(t *testing.T) {
	c := newScenarioCatalog(t)
	n := 0
	for range c.All() {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("loop ran %d times after break", n)
	}
}

func TestScenario(t *testing.T) {
	c := newScenarioCatalog(t)

	if got := titles(c.SearchByYear(1994)); !slices.Equal(got, []string{"A", "C"}) {
		t.Fatalf("SearchByYear(1994) = %v", got)
	}
	if got := titles(c.SearchByGenre("DRAMA")); !slices.Equal(got, []string{"A", "B"}) {
		t.Fatalf("SearchByGenre(DRAMA) = %v", got)
	}
	if err := c.RemoveMovie("A"); err != nil {
		t.Fatalf("RemoveMovie(A): %v", err)
	}
	if _, ok := c.SearchByTitle("A"); ok {
		t.Fatalf("A found after removal")
	}
	if got := titles(slices.Collect(c.All())); !slices.Equal(got, []string{"B", "C"}) {
		t.Fatalf("iteration = %v, want [B C]", got)
	}
}

func BenchmarkSearchByGenre(b *testing.B) {
	c := New()
	for i := 0; i < 1000; i++ {
		genre := "drama"
		if i%3 == 0 {
			genre = "comedy"
		}
		c.AddMovie(domain.NewMovie(fmt.Sprintf("movie-%d", i), genre, 1990+i%20, 7.5))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.SearchByGenre("Drama")
	}
}
