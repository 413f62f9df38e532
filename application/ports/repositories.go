package ports

import (
	"context"

	"github.com/evanhearne/ds-serverlessREST-lab/domain/movies"
)

// MovieRepository defines the interface for movie reads
// This is a port in hexagonal architecture - the domain doesn't know about the implementation
type MovieRepository interface {
	// GetByID retrieves a movie by its numeric id. Returns a NOT_FOUND
	// AppError when no item exists.
	GetByID(ctx context.Context, id int) (movies.MovieRecord, error)
}

// CastRepository defines the interface for cast reads
type CastRepository interface {
	// ListByMovie retrieves every cast record whose movieId matches, in
	// store order. An empty slice means no cast rows.
	ListByMovie(ctx context.Context, movieID int) ([]movies.CastRecord, error)
}
