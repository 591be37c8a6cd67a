package backup

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/personalweb/portfolio-backend/internal/portfolio/codec"
)

// Sink stores one named snapshot.
type Sink interface {
	Name() string
	Write(ctx context.Context, name string, seed codec.Seed) error
}

type FileSink struct {
	Dir string
}

func (s FileSink) Name() string { return "file:" + s.Dir }

func (s FileSink) Write(_ context.Context, name string, seed codec.Seed) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(s.Dir, name)
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := codec.WriteSeed(f, seed); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// ObjectPutter is the subset of the S3 client S3Sink needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Sink struct {
	client ObjectPutter
	bucket string
	prefix string
}

func NewS3Sink(client ObjectPutter, bucket, prefix string) *S3Sink {
	return &S3Sink{client: client, bucket: bucket, prefix: prefix}
}

// OpenS3Sink builds the client from the default AWS credential chain.
func OpenS3Sink(ctx context.Context, bucket, region, prefix string) (*S3Sink, error) {
	var opts []func(*awscfg.LoadOptions) error
	if region != "" {
		opts = append(opts, awscfg.WithRegion(region))
	}
	cfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewS3Sink(s3.NewFromConfig(cfg), bucket, prefix), nil
}

func (s *S3Sink) Name() string { return "s3://" + s.bucket + "/" + s.prefix }

func (s *S3Sink) Write(ctx context.Context, name string, seed codec.Seed) error {
	var buf bytes.Buffer
	if err := codec.WriteSeed(&buf, seed); err != nil {
		return err
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.prefix + name),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("application/yaml"),
	})
	return err
}
