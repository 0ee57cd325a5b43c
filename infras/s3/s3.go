package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"strings"

	"adscape/config"
	"adscape/infras/otel"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName    = "s3"
	otelAttrKey      = "s3.key"
	otelAttrBucket   = "s3.bucket"
	otelAttrByteSize = "s3.size"
)

// Bucket stores objects in the configured bucket of an S3 compatible store (R2, MinIO, AWS).
type Bucket interface {
	// Put uploads body under key and returns the public URL of the object.
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (url string, err error)
	Remove(ctx context.Context, key string) error
	// KeyFromURL is the inverse of the URL returned by Put. It is empty for URLs the bucket did
	// not issue.
	KeyFromURL(url string) string
}

type bucketImpl struct {
	client *s3.Client
	name   string
	public string
	api    string
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Bucket {
	s3Config := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(s3Config.Region),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s3Config.AccessKeyID, s3Config.SecretAccessKey, "")),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load object storage configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s3Config.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(s3Config.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &bucketImpl{
		client: client,
		name:   s3Config.BucketName,
		public: strings.TrimSuffix(s3Config.PublicDomain, "/"),
		api:    strings.TrimSuffix(s3Config.APIEndpoint, "/"),
		otel:   otel,
	}
}

func (b *bucketImpl) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (url string, err error) {
	ctx, scope := b.otel.NewScope(ctx, otelScopeName, otelScopeName+".Put")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrBucket:   b.name,
		otelAttrKey:      key,
		otelAttrByteSize: size,
	})

	_, err = b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(b.name),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", key, err)
	}

	return b.public + "/" + key, nil
}

func (b *bucketImpl) Remove(ctx context.Context, key string) (err error) {
	ctx, scope := b.otel.NewScope(ctx, otelScopeName, otelScopeName+".Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrBucket: b.name,
		otelAttrKey:    key,
	})

	if _, err = b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("failed to remove object %s: %w", key, err)
	}

	return nil
}

// KeyFromURL accepts the public domain with or without the bucket segment, and the path style
// API endpoint.
func (b *bucketImpl) KeyFromURL(url string) string {
	var prefixes []string

	if b.public != "" {
		prefixes = append(prefixes, b.public+"/"+b.name+"/", b.public+"/")
	}

	if b.api != "" {
		prefixes = append(prefixes, b.api+"/"+b.name+"/")
	}

	for _, prefix := range prefixes {
		if key, ok := strings.CutPrefix(url, prefix); ok && key != "" {
			return key
		}
	}

	return ""
}
