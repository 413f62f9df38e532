package queries

import (
	"github.com/evanhearne/ds-serverlessREST-lab/domain/movies"
	"github.com/evanhearne/ds-serverlessREST-lab/pkg/errors"
	"github.com/evanhearne/ds-serverlessREST-lab/pkg/utils"
)

// GetMovieQuery represents a query to get a single movie.
// A zero MovieID is treated as missing.
type GetMovieQuery struct {
	MovieID     int `validate:"required"`
	IncludeCast bool
}

// Validate validates the GetMovieQuery
func (q GetMovieQuery) Validate() error {
	if err := utils.ValidateStruct(q); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}

// GetMovieResult represents the result of getting a movie. Cast is nil
// unless the query asked for it.
type GetMovieResult struct {
	Movie movies.MovieRecord
	Cast  *movies.CastResult
}
