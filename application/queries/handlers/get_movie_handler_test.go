package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/evanhearne/ds-serverlessREST-lab/application/queries"
	"github.com/evanhearne/ds-serverlessREST-lab/domain/movies"
	apperrors "github.com/evanhearne/ds-serverlessREST-lab/pkg/errors"
	"github.com/evanhearne/ds-serverlessREST-lab/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetMovieHandler_Handle_WithoutCast(t *testing.T) {
	// Arrange
	ctx := context.Background()
	movieRepo := new(mocks.MockMovieRepository)
	castRepo := new(mocks.MockCastRepository)

	movie := movies.MovieRecord{"id": float64(5), "title": "X"}
	movieRepo.On("GetByID", ctx, 5).Return(movie, nil)

	handler := NewGetMovieHandler(movieRepo, castRepo, zap.NewNop())

	// Act
	result, err := handler.Handle(ctx, queries.GetMovieQuery{MovieID: 5})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, movie, result.Movie)
	assert.Nil(t, result.Cast)
	movieRepo.AssertExpectations(t)
	castRepo.AssertNotCalled(t, "ListByMovie", mock.Anything, mock.Anything)
}

func TestGetMovieHandler_Handle_WithCast(t *testing.T) {
	ctx := context.Background()
	movieRepo := new(mocks.MockMovieRepository)
	castRepo := new(mocks.MockCastRepository)

	cast := []movies.CastRecord{
		{"movieId": float64(5), "actorName": "A"},
		{"movieId": float64(5), "actorName": "B"},
	}
	movieRepo.On("GetByID", ctx, 5).Return(movies.MovieRecord{"id": float64(5)}, nil)
	castRepo.On("ListByMovie", ctx, 5).Return(cast, nil)

	handler := NewGetMovieHandler(movieRepo, castRepo, zap.NewNop())

	result, err := handler.Handle(ctx, queries.GetMovieQuery{MovieID: 5, IncludeCast: true})

	require.NoError(t, err)
	require.NotNil(t, result.Cast)
	assert.True(t, result.Cast.Available)
	assert.Equal(t, cast, result.Cast.Members)
	movieRepo.AssertExpectations(t)
	castRepo.AssertExpectations(t)
}

func TestGetMovieHandler_Handle_EmptyCast(t *testing.T) {
	ctx := context.Background()
	movieRepo := new(mocks.MockMovieRepository)
	castRepo := new(mocks.MockCastRepository)

	movieRepo.On("GetByID", ctx, 5).Return(movies.MovieRecord{"id": float64(5)}, nil)
	castRepo.On("ListByMovie", ctx, 5).Return([]movies.CastRecord{}, nil)

	handler := NewGetMovieHandler(movieRepo, castRepo, zap.NewNop())

	result, err := handler.Handle(ctx, queries.GetMovieQuery{MovieID: 5, IncludeCast: true})

	require.NoError(t, err)
	require.NotNil(t, result.Cast)
	assert.False(t, result.Cast.Available)
	assert.Empty(t, result.Cast.Members)
}

func TestGetMovieHandler_Handle_MovieNotFound(t *testing.T) {
	ctx := context.Background()
	movieRepo := new(mocks.MockMovieRepository)
	castRepo := new(mocks.MockCastRepository)

	movieRepo.On("GetByID", ctx, 9).Return(nil, apperrors.NewNotFoundError("movie"))

	handler := NewGetMovieHandler(movieRepo, castRepo, zap.NewNop())

	result, err := handler.Handle(ctx, queries.GetMovieQuery{MovieID: 9, IncludeCast: true})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFound(err))
	castRepo.AssertNotCalled(t, "ListByMovie", mock.Anything, mock.Anything)
}

func TestGetMovieHandler_Handle_CastFailureFailsRequest(t *testing.T) {
	ctx := context.Background()
	movieRepo := new(mocks.MockMovieRepository)
	castRepo := new(mocks.MockCastRepository)

	storeErr := errors.New("throttled")
	movieRepo.On("GetByID", ctx, 5).Return(movies.MovieRecord{"id": float64(5)}, nil)
	castRepo.On("ListByMovie", ctx, 5).Return(nil, storeErr)

	handler := NewGetMovieHandler(movieRepo, castRepo, zap.NewNop())

	result, err := handler.Handle(ctx, queries.GetMovieQuery{MovieID: 5, IncludeCast: true})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "failed to get cast")
}

func TestGetMovieHandler_Handle_InvalidQuery(t *testing.T) {
	ctx := context.Background()
	movieRepo := new(mocks.MockMovieRepository)
	castRepo := new(mocks.MockCastRepository)

	handler := NewGetMovieHandler(movieRepo, castRepo, zap.NewNop())

	result, err := handler.Handle(ctx, queries.GetMovieQuery{})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidation(err))
	movieRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
