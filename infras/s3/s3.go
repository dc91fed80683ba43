package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"studyroom/config"
	"studyroom/infras/otel"
	"studyroom/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrFileName = "file_name"
	otelAttrBucket   = "bucket"
)

var ErrNotConfigured = errors.New("object storage is not configured")

// S3 stores room photos in one bucket. Objects are addressed by directory and name.
type S3 interface {
	Upload(ctx context.Context, directory, fileName, contentType string, body io.ReadSeeker, size int64) (url string, err error)
	Delete(ctx context.Context, directory, objectName string) error
	ObjectNameFromURL(directory, url string) (objectName string)
}

type s3Impl struct {
	client *s3.Client
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) S3 {
	svc := &s3Impl{
		config: config,
		otel:   otel,
	}

	endpoint := config.External.S3.APIEndpoint
	if endpoint == "" {
		log.Warn().Msg("No S3 endpoint configured, room photo uploads are disabled")

		return svc
	}

	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			config.External.S3.AccessKeyID,
			config.External.S3.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")

		return svc
	}

	svc.client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return svc
}

func (svc *s3Impl) Upload(ctx context.Context, directory, fileName, contentType string, body io.ReadSeeker, size int64) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if svc.client == nil {
		return constant.Empty, ErrNotConfigured
	}

	bucket := svc.config.External.S3.BucketName
	objectKey := path.Join(directory, fileName)

	scope.SetAttributes(map[string]any{
		otelAttrFileName: objectKey,
		otelAttrBucket:   bucket,
	})

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(objectKey),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return PublicURL(svc.config.External.S3.PublicDomain, objectKey), nil
}

func (svc *s3Impl) Delete(ctx context.Context, directory, objectName string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if svc.client == nil {
		return ErrNotConfigured
	}

	bucket := svc.config.External.S3.BucketName
	objectKey := path.Join(directory, objectName)

	scope.SetAttributes(map[string]any{
		otelAttrFileName: objectKey,
		otelAttrBucket:   bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func (svc *s3Impl) ObjectNameFromURL(directory, url string) string {
	return ObjectName(svc.config.External.S3.PublicDomain, directory, url)
}

func PublicURL(publicDomain, objectKey string) string {
	return strings.TrimSuffix(publicDomain, "/") + "/" + objectKey
}

// ObjectName reverses PublicURL for objects under directory. Foreign URLs yield "".
func ObjectName(publicDomain, directory, url string) string {
	prefix := PublicURL(publicDomain, directory) + "/"

	name, found := strings.CutPrefix(url, prefix)
	if !found || name == "" || strings.Contains(name, "/") {
		return constant.Empty
	}

	return name
}
