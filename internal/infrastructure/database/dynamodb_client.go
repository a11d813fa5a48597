package database

import (
	"context"

	"doctrust/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// ConnectDynamoDB creates a DynamoDB client from the service configuration.
//
// Local DynamoDB does not validate credentials, but the SDK requires some:
// AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY default to "local".
// DYNAMODB_ENDPOINT (e.g. http://dynamodb:8000) overrides the AWS endpoint.
func ConnectDynamoDB(ctx context.Context, cfg config.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, err
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	zap.S().Infow("[database] dynamodb client ready", "region", cfg.Region, "endpoint", cfg.Endpoint)
	return client, nil
}
