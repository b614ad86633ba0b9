package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Movie is a single catalog entry. Title is the catalog key.
type Movie struct {
	Title  string  `json:"title"`
	Genre  string  `json:"genre"`
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
}

// NewMovie builds a Movie from all of its fields.
func NewMovie(title, genre string, year int, rating float64) Movie {
	return Movie{Title: title, Genre: genre, Year: year, Rating: rating}
}

func (m Movie) String() string {
	return fmt.Sprintf("%s (%d) genre: %s, rating: %s", m.Title, m.Year, m.Genre, formatRating(m.Rating))
}

// formatRating prints the shortest exact form, keeping one decimal on whole numbers.
func formatRating(r float64) string {
	if r == math.Trunc(r) && !math.IsInf(r, 0) {
		return strconv.FormatFloat(r, 'f', 1, 64)
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
