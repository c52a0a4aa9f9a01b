package media

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Options configure NewS3Store.
type S3Options struct {
	Bucket string
	Region string
	// Endpoint overrides the S3 endpoint, e.g. for MinIO. Path style
	// addressing is used when set.
	Endpoint string
	// BaseURL is the public URL prefix of the bucket, e.g. a CDN. Defaults to
	// the virtual-hosted bucket URL.
	BaseURL string
}

// S3Store keeps files in an S3 bucket.
type S3Store struct {
	client  S3API
	bucket  string
	baseURL string
}

var _ Store = (*S3Store)(nil)

// NewS3Store creates an S3Store using the default AWS credential chain.
func NewS3Store(ctx context.Context, options S3Options) (*S3Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(options.Region))
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if options.Endpoint != "" {
			o.BaseEndpoint = aws.String(options.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3StoreWithClient(client, options), nil
}

// NewS3StoreWithClient creates an S3Store over an existing client.
func NewS3StoreWithClient(client S3API, options S3Options) *S3Store {
	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", options.Bucket, options.Region)
	}

	return &S3Store{
		client:  client,
		bucket:  options.Bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *S3Store) Save(ctx context.Context, path string, r io.Reader, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(path),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("could not upload %s to s3: %w", path, err)
	}

	return nil
}

// Delete removes the object. S3 reports success for missing keys.
func (s *S3Store) Delete(ctx context.Context, path string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return fmt.Errorf("could not delete %s from s3: %w", path, err)
	}

	return nil
}

func (s *S3Store) URL(path string) string {
	return s.baseURL + "/" + strings.TrimPrefix(path, "/")
}
