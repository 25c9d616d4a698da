// File: internal/storage/s3.go
package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	appconfig "github.com/wflore19/portfolio-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
)

// ObjectStore is the narrow upload surface the rest of the application sees.
type ObjectStore interface {
	// Upload writes data under key with the given content type and returns
	// the object's public URL.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// SpacesClient talks to an S3-compatible endpoint (DigitalOcean Spaces in
// production). Objects are uploaded world-readable; the bucket serves a
// public asset namespace, not private storage.
type SpacesClient struct {
	client       *s3.Client
	bucket       string
	endpointHost string
	scheme       string
	logger       *zap.Logger
}

// NewSpacesClient builds the S3 client from static credentials and the
// configured endpoint.
func NewSpacesClient(cfg *appconfig.Config, logger *zap.Logger) (*SpacesClient, error) {
	endpoint, err := url.Parse(cfg.StorageEndpoint)
	if err != nil {
		return nil, fmt.Errorf("storage: parsing endpoint %q: %w", cfg.StorageEndpoint, err)
	}

	awsCfg := aws.Config{
		Region: cfg.StorageRegion,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.StorageEndpoint)
	})

	return &SpacesClient{
		client:       client,
		bucket:       cfg.StorageBucket,
		endpointHost: endpoint.Host,
		scheme:       endpoint.Scheme,
		logger:       logger.Named("SpacesClient"),
	}, nil
}

// Upload puts the object with a public-read ACL and returns its
// virtual-hosted URL.
func (c *SpacesClient) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("storage: putting %q: %w", key, err)
	}

	location := fmt.Sprintf("%s://%s.%s/%s", c.scheme, c.bucket, c.endpointHost, key)
	c.logger.Debug("Uploaded object", zap.String("key", key), zap.String("location", location))
	return location, nil
}
