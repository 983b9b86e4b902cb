// Package catalog serves the static movie catalog: a read-only lookup used
// to validate movie identifiers and resolve display titles. The catalog
// ships as a SQLite file and is loaded fully into memory at startup; it is
// never written by this service.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/makarov-dev/movierec/internal/logger"
)

//go:generate mockgen -source=catalog.go -destination=../mock/movie_catalog_mock.go -package=mock

// ErrEmptyCatalog indicates that the catalog file opened fine but holds no
// movies, which would make every feedback call fail validation.
var ErrEmptyCatalog = errors.New("movie catalog is empty")

// Movie is one catalog row.
type Movie struct {
	MovieID int64
	Title   string
	Year    int
}

// MovieCatalog is the read-only lookup surface consumed by the feedback
// coordinator and the recommendation surface.
type MovieCatalog interface {
	// Has reports whether the movie id exists in the catalog.
	Has(movieID int64) bool

	// Title returns the movie title, or "Unknown Movie" for ids outside the
	// catalog.
	Title(movieID int64) string
}

type memoryCatalog struct {
	movies map[int64]Movie
}

// NewSQLiteCatalog opens the SQLite catalog at path, loads the movies table
// into memory, and closes the file. The returned catalog is immutable and
// safe for concurrent use without locking.
func NewSQLiteCatalog(path string, log *logger.Logger) (MovieCatalog, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open movie catalog: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT movie_id, title, COALESCE(year, 0) FROM movies`)
	if err != nil {
		return nil, fmt.Errorf("read movie catalog: %w", err)
	}
	defer rows.Close()

	movies := make(map[int64]Movie, 2048)
	for rows.Next() {
		var m Movie
		if err = rows.Scan(&m.MovieID, &m.Title, &m.Year); err != nil {
			return nil, fmt.Errorf("scan movie catalog row: %w", err)
		}
		movies[m.MovieID] = m
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie catalog: %w", err)
	}

	if len(movies) == 0 {
		return nil, ErrEmptyCatalog
	}

	log.Info().Int("movies", len(movies)).Str("path", path).Msg("movie catalog loaded")

	return &memoryCatalog{movies: movies}, nil
}

func (c *memoryCatalog) Has(movieID int64) bool {
	_, ok := c.movies[movieID]
	return ok
}

func (c *memoryCatalog) Title(movieID int64) string {
	if m, ok := c.movies[movieID]; ok {
		return m.Title
	}
	return "Unknown Movie"
}
