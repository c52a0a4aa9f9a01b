// Package media stores uploaded files, such as recipe images, behind a small
// Store interface with a local directory backend and an S3 backend.
//
//go:generate mockgen -package mockmedia -source=interface.go -destination=mock/mockmedia.go *
package media

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store persists files under slash-separated relative paths.
type Store interface {
	// Save writes r to path, replacing any existing file.
	Save(ctx context.Context, path string, r io.Reader, contentType string) error
	// Delete removes path. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error
	// URL returns the public URL of path.
	URL(path string) string
}

// S3API is the subset of *s3.Client used by S3Store.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context,
		params *s3.DeleteObjectInput,
		optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}
