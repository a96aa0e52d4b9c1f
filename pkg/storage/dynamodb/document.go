package dynamodb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/chris/dashboard-wallpaper/pkg/models"
	"github.com/chris/dashboard-wallpaper/pkg/storage"
)

// documentItem is the table row. The document body is stored as JSON text so the
// persisted format matches the file backend byte for byte.
type documentItem struct {
	PK        string    `dynamodbav:"pk"`
	Revision  int64     `dynamodbav:"revision"`
	Body      string    `dynamodbav:"body"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}

// Load retrieves the document item with a consistent read.
func (s *Store) Load(ctx context.Context) (*models.DataDocument, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"pk": s.DocumentKey})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document key: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.TableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get document from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return models.NewDataDocument(), nil
	}

	var item documentItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document item: %w", err)
	}

	var doc models.DataDocument
	if err := json.Unmarshal([]byte(item.Body), &doc); err != nil {
		return nil, fmt.Errorf("%w in item %s: %v", storage.ErrCorruptDocument, s.DocumentKey, err)
	}
	doc.Revision = item.Revision
	return &doc, nil
}

// Save writes the document item, conditioned on the stored revision being unchanged.
func (s *Store) Save(ctx context.Context, doc *models.DataDocument) error {
	next := *doc
	next.Revision++

	body, err := json.Marshal(&next)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	itemAV, err := attributevalue.MarshalMap(documentItem{
		PK:        s.DocumentKey,
		Revision:  next.Revision,
		Body:      string(body),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal document item: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.TableName),
		Item:                itemAV,
		ConditionExpression: aws.String("attribute_not_exists(pk) OR revision = :revision"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":revision": &types.AttributeValueMemberN{Value: strconv.FormatInt(doc.Revision, 10)},
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("document %s at revision %d: %w", s.DocumentKey, doc.Revision, storage.ErrRevisionConflict)
		}
		return fmt.Errorf("failed to put document to DynamoDB: %w", err)
	}

	doc.Revision = next.Revision
	return nil
}
