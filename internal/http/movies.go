package httpserver

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/Clark-Hu/movie-catalog/internal/catalog"
	"github.com/Clark-Hu/movie-catalog/internal/domain"
)

type movieRequest struct {
	Title  string  `json:"title"`
	Genre  string  `json:"genre"`
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
}

type movieResponse struct {
	Title   string  `json:"title"`
	Genre   string  `json:"genre"`
	Year    int     `json:"year"`
	Rating  float64 `json:"rating"`
	Display string  `json:"display"`
}

type movieListResponse struct {
	Items []movieResponse `json:"items"`
	Count int             `json:"count"`
}

type healthResponse struct {
	Status string `json:"status"`
	Movies int    `json:"movies"`
}

// movieSearch holds the optional filters of GET /movies.
type movieSearch struct {
	Genre *string
	Year  *int
}

func buildMovieSearch(query url.Values) (movieSearch, error) {
	var search movieSearch
	if val := strings.TrimSpace(query.Get("genre")); val != "" {
		search.Genre = &val
	}
	if val := strings.TrimSpace(query.Get("year")); val != "" {
		year, err := strconv.Atoi(val)
		if err != nil {
			return search, fmt.Errorf("invalid year value")
		}
		search.Year = &year
	}
	return search, nil
}

// run evaluates the search against c. With both filters set the result is the
// genre match narrowed to the year, still in catalog order.
func (q movieSearch) run(c *catalog.Catalog) []domain.Movie {
	switch {
	case q.Genre != nil && q.Year != nil:
		year := *q.Year
		return slices.DeleteFunc(c.SearchByGenre(*q.Genre), func(m domain.Movie) bool {
			return m.Year != year
		})
	case q.Genre != nil:
		return c.SearchByGenre(*q.Genre)
	case q.Year != nil:
		return c.SearchByYear(*q.Year)
	default:
		return slices.Collect(c.All())
	}
}

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	search, err := buildMovieSearch(r.URL.Query())
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	var movies []domain.Movie
	s.read(func(c *catalog.Catalog) { movies = search.run(c) })
	s.respondJSON(w, http.StatusOK, toMovieListResponse(movies))
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	title, err := decodePathParam(r, "title")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	var (
		movie domain.Movie
		ok    bool
	)
	s.read(func(c *catalog.Catalog) { movie, ok = c.SearchByTitle(title) })
	if !ok {
		s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
		return
	}
	s.respondJSON(w, http.StatusOK, toMovieResponse(movie))
}

func (s *Server) handleAddMovie(w http.ResponseWriter, r *http.Request) {
	if !s.requireBearer(w, r) {
		return
	}

	var req movieRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	// The title is the catalog key and the path segment of the movie.
	if strings.TrimSpace(req.Title) == "" {
		s.respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title is required")
		return
	}

	movie := domain.NewMovie(req.Title, req.Genre, req.Year, req.Rating)
	var replaced bool
	_ = s.mutate("add_movie", func(c *catalog.Catalog) error {
		_, replaced = c.SearchByTitle(movie.Title)
		c.AddMovie(movie)
		return nil
	})

	status := http.StatusCreated
	if replaced {
		status = http.StatusOK
	}
	w.Header().Set("Location", "/movies/"+url.PathEscape(movie.Title))
	s.respondJSON(w, status, toMovieResponse(movie))
}

func (s *Server) handleRemoveMovie(w http.ResponseWriter, r *http.Request) {
	if !s.requireBearer(w, r) {
		return
	}
	title, err := decodePathParam(r, "title")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	err = s.mutate("remove_movie", func(c *catalog.Catalog) error {
		return c.RemoveMovie(title)
	})
	if err != nil {
		s.respondCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toMovieResponse(movie domain.Movie) movieResponse {
	return movieResponse{
		Title:   movie.Title,
		Genre:   movie.Genre,
		Year:    movie.Year,
		Rating:  movie.Rating,
		Display: movie.String(),
	}
}

func toMovieListResponse(movies []domain.Movie) movieListResponse {
	items := make([]movieResponse, 0, len(movies))
	for _, movie := range movies {
		items = append(items, toMovieResponse(movie))
	}
	return movieListResponse{Items: items, Count: len(items)}
}
