package dynamodb

import (
	"context"
	"fmt"

	"github.com/evanhearne/ds-serverlessREST-lab/application/ports"
	"github.com/evanhearne/ds-serverlessREST-lab/domain/movies"
	apperrors "github.com/evanhearne/ds-serverlessREST-lab/pkg/errors"
	"github.com/evanhearne/ds-serverlessREST-lab/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// MovieKeyAttribute is the partition key of the movies table
const MovieKeyAttribute = "id"

// GetItemAPIClient is the subset of the DynamoDB client used for point reads
type GetItemAPIClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// MovieRepository implements ports.MovieRepository using DynamoDB
type MovieRepository struct {
	client    GetItemAPIClient
	tableName string
	tracer    *observability.Tracer
	logger    *zap.Logger
}

// NewMovieRepository creates a new MovieRepository
func NewMovieRepository(client GetItemAPIClient, tableName string, tracer *observability.Tracer, logger *zap.Logger) ports.MovieRepository {
	return &MovieRepository{
		client:    client,
		tableName: tableName,
		tracer:    tracer,
		logger:    logger,
	}
}

// GetByID performs a point lookup on the id partition key
func (r *MovieRepository) GetByID(ctx context.Context, id int) (movies.MovieRecord, error) {
	key, err := BuildKey(MovieKeyAttribute, id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build movie key").WithCause(err)
	}

	var out *dynamodb.GetItemOutput
	err = r.tracer.TraceFunction(ctx, "dynamodb.GetMovie", func(ctx context.Context) error {
		r.tracer.AddAnnotation(ctx, "movieId", id)
		var getErr error
		out, getErr = r.client.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(r.tableName),
			Key:       key,
		})
		return getErr
	})
	if err != nil {
		r.logger.Error("Failed to get movie from DynamoDB",
			zap.Error(err),
			zap.Int("movieID", id),
			zap.String("table", r.tableName),
		)
		return nil, storeError("GetItem", err)
	}

	if out == nil || len(out.Item) == 0 {
		return nil, apperrors.NewNotFoundError("movie").
			WithDetails(map[string]interface{}{"movieId": id})
	}

	var movie movies.MovieRecord
	if err := attributevalue.UnmarshalMap(out.Item, &movie); err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("failed to unmarshal movie %d", id)).WithCause(err)
	}

	r.logger.Debug("Fetched movie",
		zap.Int("movieID", id),
		zap.Int("attributes", len(movie)),
	)

	return movie, nil
}
