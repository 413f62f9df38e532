package di

import (
	"context"
	"fmt"

	"github.com/evanhearne/ds-serverlessREST-lab/application/ports"
	"github.com/evanhearne/ds-serverlessREST-lab/application/queries"
	querybus "github.com/evanhearne/ds-serverlessREST-lab/application/queries/bus"
	queryhandlers "github.com/evanhearne/ds-serverlessREST-lab/application/queries/handlers"
	"github.com/evanhearne/ds-serverlessREST-lab/infrastructure/config"
	"github.com/evanhearne/ds-serverlessREST-lab/infrastructure/persistence/dynamodb"
	"github.com/evanhearne/ds-serverlessREST-lab/interfaces/http/rest"
	"github.com/evanhearne/ds-serverlessREST-lab/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceName names the service in logs and traces
const ServiceName = "movies-api"

// Container holds the dependencies the entry points need
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	QueryBus *querybus.QueryBus
}

// InitializeContainer creates a fully wired container backed by DynamoDB
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	tracer := observability.NewTracer(ServiceName, cfg.EnableTracing)

	awsCfg, err := ProvideAWSConfig(ctx, cfg, tracer)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := ProvideDynamoDBClient(awsCfg, cfg)

	castOpts := dynamodb.CastQueryOptions{
		IndexName:      cfg.CastIndexName,
		PageSize:       cfg.CastQueryLimit,
		ConsistentRead: cfg.CastConsistentRead,
	}

	return NewContainer(
		cfg,
		logger,
		dynamodb.NewMovieRepository(client, cfg.MoviesTable, tracer, logger),
		dynamodb.NewCastRepository(client, cfg.CastTable, castOpts, tracer, logger),
	)
}

// NewContainer wires the query side over the given repositories
func NewContainer(
	cfg *config.Config,
	logger *zap.Logger,
	movieRepo ports.MovieRepository,
	castRepo ports.CastRepository,
) (*Container, error) {
	queryBus, err := ProvideQueryBus(movieRepo, castRepo, logger)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:   cfg,
		Logger:   logger,
		QueryBus: queryBus,
	}, nil
}

// Router builds the HTTP router for the local server
func (c *Container) Router() *chi.Mux {
	return rest.NewRouter(c.QueryBus, c.Logger, c.routerOptions()).Setup()
}

// LambdaRouter builds the router behind the Lambda entry, which logs the
// raw gateway event itself
func (c *Container) LambdaRouter() *chi.Mux {
	opts := c.routerOptions()
	opts.RequestLogged = true
	return rest.NewRouter(c.QueryBus, c.Logger, opts).Setup()
}

func (c *Container) routerOptions() rest.Options {
	return rest.Options{
		EnableCORS: c.Config.EnableCORS,
		StrictCast: c.Config.StrictCast(),
		Debug:      !c.Config.IsProduction(),
	}
}

// Shutdown flushes buffered log entries
func (c *Container) Shutdown() error {
	return c.Logger.Sync()
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.IsDevelopment() {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return logger.With(zap.String("service", ServiceName)), nil
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config, tracer *observability.Tracer) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return aws.Config{}, err
	}

	tracer.InstrumentAWS(&awsCfg)
	return awsCfg, nil
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config, cfg *config.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg, func(o *awsdynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})
}

// QueryHandlerAdapter adapts specific query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

// Handle forwards the query to the wrapped handler
func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	movieRepo ports.MovieRepository,
	castRepo ports.CastRepository,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus(querybus.NewLoggingMiddleware(logger))

	getMovieHandler := queryhandlers.NewGetMovieHandler(movieRepo, castRepo, logger)
	err := queryBus.Register(queries.GetMovieQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetMovieQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getMovieHandler.Handle(ctx, getQuery)
		},
	})
	if err != nil {
		return nil, err
	}

	return queryBus, nil
}
