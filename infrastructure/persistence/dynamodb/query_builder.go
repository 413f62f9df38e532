// Package dynamodb provides the DynamoDB-backed movie and cast repositories.
package dynamodb

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// QueryBuilder assembles a partition-key Query input
type QueryBuilder struct {
	tableName      string
	indexName      *string
	keyCondition   *expression.KeyConditionBuilder
	limit          *int32
	consistentRead *bool
}

// NewQueryBuilder creates a new query builder instance
func NewQueryBuilder(tableName string) *QueryBuilder {
	return &QueryBuilder{tableName: tableName}
}

// WithIndex queries a secondary index. An empty name queries the base table.
func (qb *QueryBuilder) WithIndex(indexName string) *QueryBuilder {
	if indexName != "" {
		qb.indexName = aws.String(indexName)
	}
	return qb
}

// WithPartition sets the partition key equality condition
func (qb *QueryBuilder) WithPartition(attribute string, value interface{}) *QueryBuilder {
	keyExpr := expression.Key(attribute).Equal(expression.Value(value))
	qb.keyCondition = &keyExpr
	return qb
}

// WithLimit sets the page size. Zero or less leaves it to DynamoDB.
func (qb *QueryBuilder) WithLimit(limit int32) *QueryBuilder {
	if limit > 0 {
		qb.limit = aws.Int32(limit)
	}
	return qb
}

// WithConsistentRead requests strongly consistent reads
func (qb *QueryBuilder) WithConsistentRead(consistent bool) *QueryBuilder {
	if consistent {
		qb.consistentRead = aws.Bool(true)
	}
	return qb
}

// Build constructs the QueryInput
func (qb *QueryBuilder) Build() (*dynamodb.QueryInput, error) {
	if qb.keyCondition == nil {
		return nil, fmt.Errorf("key condition is required for query")
	}
	// Global secondary indexes only serve eventually consistent reads
	if qb.indexName != nil && qb.consistentRead != nil {
		return nil, fmt.Errorf("consistent read is not supported on index %s", aws.ToString(qb.indexName))
	}

	expr, err := expression.NewBuilder().WithKeyCondition(*qb.keyCondition).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build expression: %w", err)
	}

	return &dynamodb.QueryInput{
		TableName:                 aws.String(qb.tableName),
		IndexName:                 qb.indexName,
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     qb.limit,
		ConsistentRead:            qb.consistentRead,
	}, nil
}

// BuildKey marshals a single-attribute primary key
func BuildKey(attribute string, value interface{}) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key %s: %w", attribute, err)
	}
	return map[string]types.AttributeValue{attribute: av}, nil
}
