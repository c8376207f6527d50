package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"rentdesk/config"
	"rentdesk/infras/otel"
	"rentdesk/shared/constant"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"

	DirectoryFines     = "fines"
	DirectoryDocuments = "documents"
)

// Storage keeps uploaded fine scans and generated booking documents.
type Storage interface {
	Put(ctx context.Context, key, contentType string, data []byte) (url string, err error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(url string) (key string)
}

type storageImpl struct {
	client *s3.Client
	config *config.Config
	otel   otel.Otel
}

// ObjectKey groups objects per booking: <directory>/<bookingID>/<fileName>.
func ObjectKey(directory, bookingID, fileName string) string {
	return path.Join(directory, bookingID, path.Base(fileName))
}

func (svc *storageImpl) Put(ctx context.Context, key, contentType string, data []byte) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Put")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucket := svc.config.External.S3.BucketName

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    bucket,
	})

	reader := bytes.NewReader(data)

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(reader.Size()),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to put object")

		return constant.Empty, fmt.Errorf("failed to upload object to storage: %w", err)
	}

	return svc.publicURL(key), nil
}

func (svc *storageImpl) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucket := svc.config.External.S3.BucketName

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete object")

		return fmt.Errorf("failed to delete object from storage: %w", err)
	}

	return nil
}

func (svc *storageImpl) KeyFromURL(url string) string {
	return keyFromURL(svc.config.External.S3.PublicDomain, svc.config.External.S3.APIEndpoint, svc.config.External.S3.BucketName, url)
}

func (svc *storageImpl) publicURL(key string) string {
	return strings.TrimSuffix(svc.config.External.S3.PublicDomain, "/") + "/" + key
}

func keyFromURL(publicDomain, apiEndpoint, bucket, url string) string {
	prefixes := []string{
		strings.TrimSuffix(publicDomain, "/") + "/",
		fmt.Sprintf("%s/%s/", strings.TrimSuffix(apiEndpoint, "/"), bucket),
	}

	for _, prefix := range prefixes {
		if prefix != "/" && strings.HasPrefix(url, prefix) {
			return strings.TrimPrefix(url, prefix)
		}
	}

	return constant.Empty
}

func New(config *config.Config, otel otel.Otel) Storage {
	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(config.External.S3.APIEndpoint)
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &storageImpl{
		client: client,
		config: config,
		otel:   otel,
	}
}
