package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bookit/config"
	"bookit/infras/otel"
	"bookit/shared/constant"
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrFileName = "file_name"
	otelAttrBucket   = "bucket"
	defaultRegion    = "auto"
)

// S3 stores generated artifacts in an S3 compatible bucket.
type S3 interface {
	UploadFileBytes(ctx context.Context, bucketName, directory, fileName, contentType string, fileData []byte) (url string, err error)
	ObjectURL(bucketName, directory, fileName string) string
}

type s3Impl struct {
	Client *s3.Client
	Config *config.Config
	otel   otel.Otel
}

func (svc *s3Impl) UploadFileBytes(ctx context.Context, bucketName, directory, fileName, contentType string, fileData []byte) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadFileBytes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if bucketName == "" {
		bucketName = svc.Config.External.S3.BucketName
	}

	scope.SetAttributes(map[string]any{
		otelAttrFileName: fileName,
		otelAttrBucket:   bucketName,
	})

	objectKey := path.Join(directory, fileName)
	fileReader := bytes.NewReader(fileData)

	_, err = svc.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucketName),
		Key:           aws.String(objectKey),
		Body:          fileReader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(fileReader.Size()),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to upload file to S3")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return svc.ObjectURL(bucketName, directory, fileName), nil
}

// ObjectURL prefers the public domain and falls back to the path-style API URL.
func (svc *s3Impl) ObjectURL(bucketName, directory, fileName string) string {
	if bucketName == "" {
		bucketName = svc.Config.External.S3.BucketName
	}

	objectKey := path.Join(directory, fileName)

	if publicDomain := strings.TrimSuffix(svc.Config.External.S3.PublicDomain, "/"); publicDomain != "" {
		return fmt.Sprintf("%s/%s", publicDomain, objectKey)
	}

	apiEndpoint := strings.TrimSuffix(svc.Config.External.S3.APIEndpoint, "/")

	return fmt.Sprintf("%s/%s/%s", apiEndpoint, bucketName, objectKey)
}

// New returns nil when EXTERNAL_S3_ENABLE is false; callers check for that.
func New(config *config.Config, otel otel.Otel) S3 {
	if !config.External.S3.Enable {
		log.Info().Msg("S3 disabled, tickets will not be archived")

		return nil
	}

	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(staticProvider),
		awsConfig.WithRegion(defaultRegion),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if config.External.S3.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(config.External.S3.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &s3Impl{
		Client: s3Client,
		Config: config,
		otel:   otel,
	}
}
