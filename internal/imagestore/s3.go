// Package imagestore uploads listing images to S3-compatible object storage
// and returns their public URLs.
package imagestore

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/donaldgifford/voltmarket/internal/metrics"
)

// Upload errors.
var (
	ErrNoFiles         = errors.New("no files to upload")
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrFileTooLarge    = errors.New("file too large")
)

const defaultMaxSize = 10 << 20

// PutObjectAPI is the subset of the S3 client used by S3Store.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// File is one image to upload. ContentType is sniffed from the body when
// empty.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// S3Store uploads images to a single bucket.
type S3Store struct {
	client        PutObjectAPI
	bucket        string
	region        string
	prefix        string
	publicBaseURL string
	maxSize       int64
	newKey        func() string
	log           *slog.Logger
}

// Option configures the S3Store.
type Option func(*S3Store)

// WithPrefix sets the object key prefix.
func WithPrefix(prefix string) Option {
	return func(s *S3Store) {
		s.prefix = prefix
	}
}

// WithRegion sets the region used to build default object URLs.
func WithRegion(region string) Option {
	return func(s *S3Store) {
		s.region = region
	}
}

// WithPublicBaseURL serves uploaded objects from baseURL (a CDN or a
// MinIO endpoint) instead of the virtual-hosted S3 URL.
func WithPublicBaseURL(baseURL string) Option {
	return func(s *S3Store) {
		s.publicBaseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithMaxSize sets the per-file size limit in bytes.
func WithMaxSize(n int64) Option {
	return func(s *S3Store) {
		if n > 0 {
			s.maxSize = n
		}
	}
}

// WithKeyFunc overrides the object name generator.
func WithKeyFunc(f func() string) Option {
	return func(s *S3Store) {
		s.newKey = f
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *S3Store) {
		s.log = l
	}
}

// NewS3Store creates a store writing to bucket through client.
func NewS3Store(client PutObjectAPI, bucket string, opts ...Option) *S3Store {
	s := &S3Store{
		client:  client,
		bucket:  bucket,
		region:  "us-east-1",
		maxSize: defaultMaxSize,
		newKey:  uuid.NewString,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewS3Client loads the default AWS credential chain for region. A
// non-empty endpoint targets an S3-compatible server with path-style
// addressing.
func NewS3Client(ctx context.Context, region, endpoint string) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Upload stores every file and returns their URLs in input order. It stops
// at the first failure.
func (s *S3Store) Upload(ctx context.Context, files []File) ([]string, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	urls := make([]string, 0, len(files))
	for i, f := range files {
		u, err := s.put(ctx, f)
		if err != nil {
			metrics.ImageUploadFailuresTotal.Inc()
			return nil, fmt.Errorf("uploading file %d (%s): %w", i, f.Name, err)
		}
		metrics.ImageUploadsTotal.Inc()
		urls = append(urls, u)
	}
	return urls, nil
}

func (s *S3Store) put(ctx context.Context, f File) (string, error) {
	if f.Size > s.maxSize {
		return "", fmt.Errorf("%w: %d bytes exceeds %d", ErrFileTooLarge, f.Size, s.maxSize)
	}

	body := bufio.NewReader(f.Body)
	contentType := f.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		head, _ := body.Peek(512)
		contentType = http.DetectContentType(head)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	key := s.prefix + s.newKey() + strings.ToLower(filepath.Ext(f.Name))

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        io.LimitReader(body, s.maxSize),
		ContentType: aws.String(contentType),
	}
	if f.Size > 0 {
		input.ContentLength = aws.Int64(f.Size)
	} else {
		// Unknown size: buffer one byte past the limit to detect oversize files.
		data, err := io.ReadAll(io.LimitReader(body, s.maxSize+1))
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", f.Name, err)
		}
		if int64(len(data)) > s.maxSize {
			return "", fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, s.maxSize)
		}
		input.Body = bytes.NewReader(data)
		input.ContentLength = aws.Int64(int64(len(data)))
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("putting object %s: %w", key, err)
	}

	s.log.Debug("image uploaded", "bucket", s.bucket, "key", key, "content_type", contentType)
	return s.url(key), nil
}

func (s *S3Store) url(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
