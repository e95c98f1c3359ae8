// Package archive keeps a copy of every contact submission in
// S3-compatible object storage (AWS or Wasabi).
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"europlast-backend/config"
	"europlast-backend/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Provider represents the S3-compatible storage provider
type Provider string

const (
	ProviderAWS    Provider = "aws"
	ProviderWasabi Provider = "wasabi"
)

// Config holds configuration for S3-compatible storage
type Config struct {
	Provider        Provider
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	// Endpoint overrides the provider default, e.g. "s3.eu-central-1.wasabisys.com"
	Endpoint string
}

// NewConfig picks the archive settings out of the application config.
func NewConfig(app *config.Config) Config {
	cfg := Config{
		Provider:        ProviderAWS,
		AccessKeyID:     app.S3AccessKeyID,
		SecretAccessKey: app.S3SecretAccessKey,
		Region:          app.S3Region,
		Bucket:          app.ContactArchiveBucket,
		Endpoint:        app.S3Endpoint,
	}
	if app.S3Provider == string(ProviderWasabi) {
		cfg.Provider = ProviderWasabi
		if cfg.Endpoint == "" {
			cfg.Endpoint = fmt.Sprintf("s3.%s.wasabisys.com", cfg.Region)
		}
	}
	return cfg
}

// Enabled reports whether enough settings are present to archive.
func (c Config) Enabled() bool {
	return c.Bucket != "" && c.Region != "" && c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// NewS3Client creates an S3 client with the given config
func NewS3Client(ctx context.Context, cfg Config) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String("https://" + cfg.Endpoint)
		}
		// Wasabi requires path-style
		o.UsePathStyle = cfg.Provider == ProviderWasabi
	}), nil
}

// ObjectPutter is the subset of *s3.Client the archive uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archive stores submissions as JSON objects, one per submission.
type S3Archive struct {
	client ObjectPutter
	bucket string
}

func NewS3Archive(client ObjectPutter, bucket string) *S3Archive {
	return &S3Archive{client: client, bucket: bucket}
}

type archivedSubmission struct {
	ID         string              `json:"id"`
	ReceivedAt time.Time           `json:"received_at"`
	ClientIP   string              `json:"client_ip,omitempty"`
	UserAgent  string              `json:"user_agent,omitempty"`
	RequestID  string              `json:"request_id,omitempty"`
	Contact    domain.ContactInput `json:"contact"`
}

// ObjectKey returns where a submission is stored, partitioned by day.
func ObjectKey(sub *domain.ContactSubmission) string {
	return fmt.Sprintf("contact-submissions/%s/%s.json", sub.ReceivedAt.UTC().Format("2006/01/02"), sub.ID)
}

func (a *S3Archive) Dispatch(ctx context.Context, sub *domain.ContactSubmission) error {
	body, err := json.Marshal(archivedSubmission{
		ID:         sub.ID,
		ReceivedAt: sub.ReceivedAt.UTC(),
		ClientIP:   sub.ClientIP,
		UserAgent:  sub.UserAgent,
		RequestID:  sub.RequestID,
		Contact:    sub.Request.Input(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode submission: %w", err)
	}

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(ObjectKey(sub)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to archive submission %s: %w", sub.ID, err)
	}
	return nil
}
