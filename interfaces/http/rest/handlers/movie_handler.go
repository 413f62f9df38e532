package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/evanhearne/ds-serverlessREST-lab/application/queries"
	querybus "github.com/evanhearne/ds-serverlessREST-lab/application/queries/bus"
	"github.com/evanhearne/ds-serverlessREST-lab/domain/movies"
	"github.com/evanhearne/ds-serverlessREST-lab/pkg/common"
	"github.com/evanhearne/ds-serverlessREST-lab/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Client-facing messages
const (
	MsgInvalidMovieID = "Missing or invalid movieId"
	MsgMovieNotFound  = "Movie not found"
)

// MovieHandler handles movie-related HTTP requests
type MovieHandler struct {
	queryBus   *querybus.QueryBus
	errors     *errors.ErrorHandler
	strictCast bool
	logger     *zap.Logger
}

// NewMovieHandler creates a new movie handler. With strictCast the cast
// field is always a list and castAvailable tells whether rows were found.
func NewMovieHandler(queryBus *querybus.QueryBus, errorHandler *errors.ErrorHandler, strictCast bool, logger *zap.Logger) *MovieHandler {
	return &MovieHandler{
		queryBus:   queryBus,
		errors:     errorHandler,
		strictCast: strictCast,
		logger:     logger,
	}
}

// GetMovie handles GET /movies/{movieId}
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := parseMovieID(chi.URLParam(r, "movieId"))
	if !ok {
		h.respondMessage(w, http.StatusNotFound, MsgInvalidMovieID)
		return
	}

	query := queries.GetMovieQuery{
		MovieID:     movieID,
		IncludeCast: r.URL.Query().Get("cast") == "true",
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	switch {
	case err == nil:
	case errors.IsValidation(err):
		h.respondMessage(w, http.StatusNotFound, MsgInvalidMovieID)
		return
	case errors.IsNotFound(err):
		h.logger.Info("Movie not found", zap.Int("movieID", movieID))
		h.respondMessage(w, http.StatusNotFound, MsgMovieNotFound)
		return
	default:
		h.errors.Handle(w, r, err)
		return
	}

	movie, ok := result.(*queries.GetMovieResult)
	if !ok {
		h.errors.Handle(w, r, errors.NewInternalError(fmt.Sprintf("unexpected query result %T", result)))
		return
	}

	if err := common.RespondData(w, http.StatusOK, h.render(movie)); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

// render merges the cast outcome into a copy of the movie item
func (h *MovieHandler) render(result *queries.GetMovieResult) movies.MovieRecord {
	data := result.Movie.Clone()
	if result.Cast == nil {
		return data
	}

	switch {
	case h.strictCast:
		data["cast"] = result.Cast.Members
		data["castAvailable"] = result.Cast.Available
	case result.Cast.Available:
		data["cast"] = result.Cast.Members
	default:
		data["cast"] = movies.NoCastMessage
	}
	return data
}

func (h *MovieHandler) respondMessage(w http.ResponseWriter, status int, message string) {
	if err := common.RespondMessage(w, status, message); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

// parseMovieID accepts base-10 integers other than zero
func parseMovieID(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
