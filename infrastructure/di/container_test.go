package di

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evanhearne/ds-serverlessREST-lab/application/queries"
	"github.com/evanhearne/ds-serverlessREST-lab/domain/movies"
	"github.com/evanhearne/ds-serverlessREST-lab/infrastructure/config"
	"github.com/evanhearne/ds-serverlessREST-lab/tests/mocks"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:      "development",
		AWSRegion:        "eu-west-1",
		MoviesTable:      "Movies",
		CastTable:        "MovieCast",
		CastResponseMode: config.CastModeLegacy,
		LogLevel:         "info",
	}
}

func TestProvideLogger(t *testing.T) {
	cfg := testConfig()
	logger, err := ProvideLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	cfg.Environment = "staging"
	cfg.LogLevel = "debug"
	logger, err = ProvideLogger(cfg)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	cfg.LogLevel = "verbose"
	_, err = ProvideLogger(cfg)
	assert.Error(t, err)
}

func TestProvideDynamoDBClient_Endpoint(t *testing.T) {
	cfg := testConfig()
	cfg.DynamoDBEndpoint = "http://localhost:8000"

	client := ProvideDynamoDBClient(aws.Config{Region: "eu-west-1"}, cfg)
	assert.Equal(t, "http://localhost:8000", aws.ToString(client.Options().BaseEndpoint))

	client = ProvideDynamoDBClient(aws.Config{Region: "eu-west-1"}, testConfig())
	assert.Nil(t, client.Options().BaseEndpoint)
}

func TestProvideQueryBus(t *testing.T) {
	movieRepo := new(mocks.MockMovieRepository)
	castRepo := new(mocks.MockCastRepository)
	movieRepo.On("GetByID", mock.Anything, 3).Return(movies.MovieRecord{"id": float64(3)}, nil)

	bus, err := ProvideQueryBus(movieRepo, castRepo, zap.NewNop())
	require.NoError(t, err)

	res, err := bus.Ask(context.Background(), queries.GetMovieQuery{MovieID: 3})
	require.NoError(t, err)

	result, ok := res.(*queries.GetMovieResult)
	require.True(t, ok)
	assert.Equal(t, float64(3), result.Movie["id"])
	assert.Nil(t, result.Cast)
}

func TestContainer_Router(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	container, err := NewContainer(testConfig(), zap.New(core),
		new(mocks.MockMovieRepository), new(mocks.MockCastRepository))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	container.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, logs.FilterMessage("[EVENT]").Len())

	w = httptest.NewRecorder()
	container.LambdaRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, logs.FilterMessage("[EVENT]").Len())

	assert.NoError(t, container.Shutdown())
}
