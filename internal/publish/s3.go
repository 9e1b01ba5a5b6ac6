// Package publish uploads rendered QR images to S3 or an S3-compatible
// service and returns their public URL.
package publish

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Client is the subset of the S3 API the publisher needs.
type S3Client interface {
	PutObject(ctx context.Context, params *s3aws.PutObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error)
}

// Config describes the target bucket. Empty Bucket disables publishing.
type Config struct {
	Bucket         string `env:"BUCKET"`
	Region         string `env:"REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"ACCESS_KEY_ID"`
	SecretKey      string `env:"SECRET_KEY"`
	Endpoint       string `env:"ENDPOINT"`
	BaseURL        string `env:"BASE_URL"`
	Prefix         string `env:"PREFIX" envDefault:"qr/"`
	ForcePathStyle bool   `env:"FORCE_PATH_STYLE"`
}

// Enabled reports whether a bucket is configured.
func (c Config) Enabled() bool { return c.Bucket != "" }

// S3Publisher uploads files to a bucket.
type S3Publisher struct {
	client        S3Client
	bucket        string
	prefix        string
	baseURL       string
	uploadTimeout time.Duration
}

// Option configures an S3Publisher.
type Option func(*options)

type options struct {
	client        S3Client
	httpClient    *http.Client
	uploadTimeout time.Duration
}

// WithS3Client sets a pre-configured client. Used by tests.
func WithS3Client(client S3Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithHTTPClient sets the HTTP client used by the AWS SDK.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithUploadTimeout bounds each upload.
func WithUploadTimeout(d time.Duration) Option {
	return func(o *options) {
		o.uploadTimeout = d
	}
}

// NewS3 creates a publisher. Static credentials are used when both keys
// are set; otherwise the SDK's default chain applies.
func NewS3(ctx context.Context, cfg Config, opts ...Option) (*S3Publisher, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	client := o.client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}
		if o.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(o.httpClient))
		}

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client = s3aws.NewFromConfig(awsConfig, func(so *s3aws.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle
		})
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL(cfg)
	}

	return &S3Publisher{
		client:        client,
		bucket:        cfg.Bucket,
		prefix:        cfg.Prefix,
		baseURL:       strings.TrimRight(baseURL, "/"),
		uploadTimeout: o.uploadTimeout,
	}, nil
}

func defaultBaseURL(cfg Config) string {
	if cfg.Endpoint != "" {
		endpoint := strings.TrimRight(cfg.Endpoint, "/")
		if cfg.ForcePathStyle {
			return endpoint + "/" + cfg.Bucket
		}
		return endpoint
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

// Publish uploads the PNG at localPath and returns its URL.
func (p *S3Publisher) Publish(ctx context.Context, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFileNotFound, err)
	}
	defer f.Close()

	if p.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.uploadTimeout)
		defer cancel()
	}

	key := path.Join(p.prefix, filepath.Base(localPath))
	_, err = p.client.PutObject(ctx, &s3aws.PutObjectInput{
		Bucket:       aws.String(p.bucket),
		Key:          aws.String(key),
		Body:         f,
		ContentType:  aws.String("image/png"),
		CacheControl: aws.String("public, max-age=3600"),
	})
	if err != nil {
		return "", classifyS3Error(err, "upload")
	}
	return p.URL(key), nil
}

// URL returns the public URL for key.
func (p *S3Publisher) URL(key string) string {
	return p.baseURL + "/" + strings.TrimLeft(key, "/")
}
