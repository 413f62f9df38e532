package handlers

import (
	"context"
	"fmt"

	"github.com/evanhearne/ds-serverlessREST-lab/application/ports"
	"github.com/evanhearne/ds-serverlessREST-lab/application/queries"
	"github.com/evanhearne/ds-serverlessREST-lab/domain/movies"

	"go.uber.org/zap"
)

// GetMovieHandler handles single movie lookups with optional cast enrichment
type GetMovieHandler struct {
	movieRepo ports.MovieRepository
	castRepo  ports.CastRepository
	logger    *zap.Logger
}

// NewGetMovieHandler creates a new get movie handler
func NewGetMovieHandler(movieRepo ports.MovieRepository, castRepo ports.CastRepository, logger *zap.Logger) *GetMovieHandler {
	return &GetMovieHandler{
		movieRepo: movieRepo,
		castRepo:  castRepo,
		logger:    logger,
	}
}

// Handle executes the movie query. The cast query only runs after the
// movie was found; a failing cast query fails the whole lookup.
func (h *GetMovieHandler) Handle(ctx context.Context, query queries.GetMovieQuery) (*queries.GetMovieResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	movie, err := h.movieRepo.GetByID(ctx, query.MovieID)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	result := &queries.GetMovieResult{Movie: movie}
	if !query.IncludeCast {
		return result, nil
	}

	members, err := h.castRepo.ListByMovie(ctx, query.MovieID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cast: %w", err)
	}

	cast := movies.NewCastResult(members)
	result.Cast = &cast

	h.logger.Debug("Movie enriched with cast",
		zap.Int("movieID", query.MovieID),
		zap.Int("castCount", len(cast.Members)),
	)

	return result, nil
}
