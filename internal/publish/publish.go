package publish

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/vangoui/internal/config"
	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/internal/preview"
)

// ContentType is sent with every snapshot.
const ContentType = "text/html; charset=utf-8"

// Uploader is the part of *s3.Client used to publish.
type Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Result describes an uploaded snapshot.
type Result struct {
	Bucket string
	Key    string
	Size   int
	ETag   string
}

// Location returns the s3:// URL of the object.
func (r Result) Location() string {
	return fmt.Sprintf("s3://%s/%s", r.Bucket, r.Key)
}

// NewClient creates an S3 client for cfg with credentials from the
// environment.
func NewClient(cfg config.PublishConfig) *s3.Client {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
		UsePathStyle: cfg.PathStyle,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts)
}

func envCredentials(context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, fmt.Errorf("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "Environment",
	}, nil
}

// Snapshot renders the static gallery page.
func Snapshot(cfg *config.Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := preview.WritePage(&buf, cfg, false); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Publish uploads body to the bucket and key of cfg. A missing bucket is
// E171; a failed upload is E170.
func Publish(ctx context.Context, up Uploader, cfg config.PublishConfig, body []byte, logger *slog.Logger) (Result, error) {
	if cfg.Bucket == "" {
		return Result{}, errors.New("E171")
	}
	key := cfg.Key
	if key == "" {
		key = config.DefaultKey
	}
	if logger == nil {
		logger = slog.Default()
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(ContentType),
		ContentLength: aws.Int64(int64(len(body))),
	}
	if cfg.CacheControl != "" {
		input.CacheControl = aws.String(cfg.CacheControl)
	}

	logger.Debug("uploading snapshot", "bucket", cfg.Bucket, "key", key, "bytes", len(body))
	out, err := up.PutObject(ctx, input)
	if err != nil {
		return Result{}, errors.New("E170").
			WithDetail(fmt.Sprintf("Uploading s3://%s/%s failed.", cfg.Bucket, key)).
			Wrap(err)
	}

	res := Result{Bucket: cfg.Bucket, Key: key, Size: len(body)}
	if out != nil {
		res.ETag = aws.ToString(out.ETag)
	}
	logger.Info("snapshot published", "location", res.Location(), "etag", res.ETag)
	return res, nil
}
