// Package app builds the shared dependencies of the server and the relay Lambda
// from a Config.
package app

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/chris/dashboard-wallpaper/pkg/classifier"
	"github.com/chris/dashboard-wallpaper/pkg/config"
	"github.com/chris/dashboard-wallpaper/pkg/storage"
	dydbstore "github.com/chris/dashboard-wallpaper/pkg/storage/dynamodb"
	"github.com/chris/dashboard-wallpaper/pkg/storage/file"
	"github.com/chris/dashboard-wallpaper/pkg/storage/memory"
)

// NewBackend returns the storage backend selected by cfg.StorageBackend.
func NewBackend(ctx context.Context, cfg *config.Config) (storage.Backend, error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		return file.New(cfg.DataFile), nil
	case config.BackendMemory:
		return memory.New(), nil
	case config.BackendDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("unable to load SDK config: %w", err)
		}
		return dydbstore.New(dynamodb.NewFromConfig(awsCfg), cfg.DocumentTableName, cfg.DocumentKey), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// NewClassifier uses the rule file from cfg when set, otherwise the embedded rules.
func NewClassifier(cfg *config.Config) (*classifier.Classifier, error) {
	if cfg.ClassifierRulesFile == "" {
		return classifier.Default(), nil
	}
	rules, err := classifier.LoadRules(cfg.ClassifierRulesFile)
	if err != nil {
		return nil, err
	}
	return classifier.New(rules)
}
