package dynamodb

import (
	"context"
	"fmt"

	"github.com/evanhearne/ds-serverlessREST-lab/application/ports"
	"github.com/evanhearne/ds-serverlessREST-lab/domain/movies"
	apperrors "github.com/evanhearne/ds-serverlessREST-lab/pkg/errors"
	"github.com/evanhearne/ds-serverlessREST-lab/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// CastKeyAttribute is the partition key of the cast table (or its index)
const CastKeyAttribute = "movieId"

// CastQueryOptions tunes the cast query
type CastQueryOptions struct {
	IndexName      string // empty queries the base table
	PageSize       int32  // zero leaves page size to DynamoDB
	ConsistentRead bool   // base table only
}

// CastRepository implements ports.CastRepository using DynamoDB
type CastRepository struct {
	client    dynamodb.QueryAPIClient
	tableName string
	opts      CastQueryOptions
	tracer    *observability.Tracer
	logger    *zap.Logger
}

// NewCastRepository creates a new CastRepository
func NewCastRepository(client dynamodb.QueryAPIClient, tableName string, opts CastQueryOptions, tracer *observability.Tracer, logger *zap.Logger) ports.CastRepository {
	return &CastRepository{
		client:    client,
		tableName: tableName,
		opts:      opts,
		tracer:    tracer,
		logger:    logger,
	}
}

// ListByMovie queries every cast item for the movie, following pagination
func (r *CastRepository) ListByMovie(ctx context.Context, movieID int) ([]movies.CastRecord, error) {
	input, err := NewQueryBuilder(r.tableName).
		WithIndex(r.opts.IndexName).
		WithPartition(CastKeyAttribute, movieID).
		WithLimit(r.opts.PageSize).
		WithConsistentRead(r.opts.ConsistentRead).
		Build()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build cast query").WithCause(err)
	}

	cast := make([]movies.CastRecord, 0)
	pages := 0

	err = r.tracer.TraceFunction(ctx, "dynamodb.QueryCast", func(ctx context.Context) error {
		r.tracer.AddAnnotation(ctx, "movieId", movieID)
		paginator := dynamodb.NewQueryPaginator(r.client, input)
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return storeError("Query", err)
			}
			pages++

			var items []movies.CastRecord
			if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
				return apperrors.NewInternalError(fmt.Sprintf("failed to unmarshal cast for movie %d", movieID)).WithCause(err)
			}
			cast = append(cast, items...)
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to query cast from DynamoDB",
			zap.Error(err),
			zap.Int("movieID", movieID),
			zap.String("table", r.tableName),
			zap.String("index", r.opts.IndexName),
		)
		return nil, err
	}

	r.logger.Debug("Fetched cast",
		zap.Int("movieID", movieID),
		zap.Int("count", len(cast)),
		zap.Int("pages", pages),
	)

	return cast, nil
}
