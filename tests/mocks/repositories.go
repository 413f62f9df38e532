// Package mocks provides testify mocks of the repository ports.
package mocks

import (
	"context"

	"github.com/evanhearne/ds-serverlessREST-lab/domain/movies"

	"github.com/stretchr/testify/mock"
)

// MockMovieRepository mocks ports.MovieRepository
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) GetByID(ctx context.Context, id int) (movies.MovieRecord, error) {
	args := m.Called(ctx, id)
	movie, _ := args.Get(0).(movies.MovieRecord)
	return movie, args.Error(1)
}

// MockCastRepository mocks ports.CastRepository
type MockCastRepository struct {
	mock.Mock
}

func (m *MockCastRepository) ListByMovie(ctx context.Context, movieID int) ([]movies.CastRecord, error) {
	args := m.Called(ctx, movieID)
	cast, _ := args.Get(0).([]movies.CastRecord)
	return cast, args.Error(1)
}
