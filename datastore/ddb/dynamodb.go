/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/filestore/errors"
)

// DefaultKeyTemplate addresses the document item. {Name} expands to the document name.
const DefaultKeyTemplate = "FILESTORE#{Name}"

// DefaultDocumentName is used when no document name is configured.
const DefaultDocumentName = "file.json"

// documentEntityType tags the item so it can share a single-table design with other entities.
const documentEntityType = "FileStoreDocument"

// API is the subset of the DynamoDB client the store needs.
type API interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
}

// Options configures the DynamoDB client and the item that holds the document.
type Options struct {
	Region      string
	AccessKey   string
	SecretKey   string
	Endpoint    string
	Table       string
	Document    string
	KeyTemplate string
}

// DynamodbDataStore implements datastore.DocumentStore by keeping the whole
// document in one DynamoDB item.
type DynamodbDataStore struct {
	client    API
	tableName string
	document  string
	key       string
}

// documentItem is the stored shape of the document.
type documentItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`
	Name       string `dynamodbav:"Name"`
	Body       string `dynamodbav:"Body"`
	UpdatedAt  string `dynamodbav:"UpdatedAt"`
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// expandMacros replaces every {Field} in template with values[Field]. Unknown macros expand to "".
func expandMacros(template string, values map[string]string) string {
	return macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
		return values[strings.Trim(macro, "{}")]
	})
}

// NewDynamoDBClient initializes a DynamoDB client. Static credentials are used when
// both keys are set, otherwise the default AWS credential chain applies.
func NewDynamoDBClient(ctx context.Context, opts Options) (*sdk.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
	return client, nil
}

// NewDynamodbDataStore builds a client from opts and returns a store on top of it.
func NewDynamodbDataStore(ctx context.Context, opts Options) (*DynamodbDataStore, error) {
	if opts.Table == "" {
		return nil, errors.NewValidationError("table", "DynamoDB table name is required")
	}
	client, err := NewDynamoDBClient(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return NewWithClient(client, opts.Table, opts.Document, opts.KeyTemplate), nil
}

// NewWithClient returns a store using an existing client.
func NewWithClient(client API, tableName, document, keyTemplate string) *DynamodbDataStore {
	if document == "" {
		document = DefaultDocumentName
	}
	if keyTemplate == "" {
		keyTemplate = DefaultKeyTemplate
	}
	return &DynamodbDataStore{
		client:    client,
		tableName: tableName,
		document:  document,
		key:       expandMacros(keyTemplate, map[string]string{"Name": document}),
	}
}

// Location returns a dynamodb:// URI naming the table and item key.
func (d *DynamodbDataStore) Location() string {
	return fmt.Sprintf("dynamodb://%s/%s", d.tableName, d.key)
}

// buildSingleKey returns the key of the document item; PK and SK are identical
// for a single object.
func (d *DynamodbDataStore) buildSingleKey() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: d.key},
		"SK": &types.AttributeValueMemberS{Value: d.key},
	}
}

// Load fetches the document item with a consistent read.
func (d *DynamodbDataStore) Load(ctx context.Context) ([]byte, error) {
	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName:      &d.tableName,
		Key:            d.buildSingleKey(),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, errors.NewIOError("read", d.Location(), fmt.Errorf("GetItem error: %w", err))
	}
	if out.Item == nil {
		return nil, errors.NewNotFoundError("document", d.Location())
	}

	var item documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, errors.NewIOError("read", d.Location(), fmt.Errorf("failed to unmarshal item: %w", err))
	}
	return []byte(item.Body), nil
}

// Store replaces the document item. PutItem swaps the whole item in one call.
func (d *DynamodbDataStore) Store(ctx context.Context, data []byte) error {
	av, err := attributevalue.MarshalMap(documentItem{
		PK:         d.key,
		SK:         d.key,
		EntityType: documentEntityType,
		Name:       d.document,
		Body:       string(data),
		UpdatedAt:  time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return errors.NewIOError("write", d.Location(), fmt.Errorf("failed to marshal item: %w", err))
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      av,
	})
	if err != nil {
		return errors.NewIOError("write", d.Location(), fmt.Errorf("PutItem failed: %w", err))
	}
	return nil
}
