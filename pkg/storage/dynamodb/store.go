// Package dynamodb keeps the data document as a single DynamoDB item so that the
// HTTP server and the relay Lambda can share it.
package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/chris/dashboard-wallpaper/pkg/storage"
)

// DefaultDocumentKey is the partition key of the document item.
const DefaultDocumentKey = "dashboard"

// DynamoDBAPI is the subset of the DynamoDB client the store uses.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Store implements storage.Backend using AWS DynamoDB.
type Store struct {
	Client      DynamoDBAPI
	TableName   string
	DocumentKey string
}

// New creates a new Store. An empty key uses DefaultDocumentKey.
func New(client DynamoDBAPI, tableName, documentKey string) *Store {
	if documentKey == "" {
		documentKey = DefaultDocumentKey
	}
	return &Store{
		Client:      client,
		TableName:   tableName,
		DocumentKey: documentKey,
	}
}

// Make sure we conform to the interface
var _ storage.Backend = (*Store)(nil)
