// Command catalog-demo builds a movie catalog from sample data and walks
// through its operations on stdout. The first failing operation ends the run.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Clark-Hu/movie-catalog/internal/catalog"
	"github.com/Clark-Hu/movie-catalog/internal/domain"
	"github.com/Clark-Hu/movie-catalog/internal/seed"
)

type options struct {
	genre      string
	year       int
	collection string
	remove     string
}

func main() {
	var (
		file = flag.String("file", "", "catalog snapshot file (built-in sample when empty)")
		opts options
	)
	flag.StringVar(&opts.genre, "genre", "drama", "genre to search for")
	flag.IntVar(&opts.year, "year", 1994, "release year to search for")
	flag.StringVar(&opts.collection, "collection", "Dramas of the 90s", "collection to print")
	flag.StringVar(&opts.remove, "remove", "Forrest Gump", "title to remove at the end of the run")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("catalog-demo: ")

	var src seed.Source = seed.SampleSource{}
	if *file != "" {
		src = seed.FileSource{Path: *file}
	}
	cat, err := seed.Build(context.Background(), src)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	if err := run(os.Stdout, cat, opts); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(w io.Writer, cat *catalog.Catalog, opts options) error {
	section(w, "All movies")
	for movie := range cat.All() {
		fmt.Fprintln(w, movie)
	}

	section(w, fmt.Sprintf("Genre %q", opts.genre))
	printMovies(w, cat.SearchByGenre(opts.genre))

	section(w, fmt.Sprintf("Released in %d", opts.year))
	printMovies(w, cat.SearchByYear(opts.year))

	section(w, fmt.Sprintf("Collection %q", opts.collection))
	printMovies(w, cat.Collection(opts.collection))

	if err := cat.RemoveMovie(opts.remove); err != nil {
		return fmt.Errorf("remove %q: %w", opts.remove, err)
	}
	section(w, fmt.Sprintf("After removing %q", opts.remove))
	for movie := range cat.All() {
		fmt.Fprintln(w, movie)
	}

	section(w, fmt.Sprintf("Collection %q after removal", opts.collection))
	printMovies(w, cat.Collection(opts.collection))
	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n== %s ==\n", title)
}

func printMovies(w io.Writer, movies []domain.Movie) {
	if len(movies) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}
	for _, movie := range movies {
		fmt.Fprintln(w, movie)
	}
}
