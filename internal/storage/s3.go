package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/DhavalSuthar-24/lelo/pkg/utils"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of the S3 client the store uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	s3.ListObjectsV2APIClient
}

type S3Options struct {
	Region          string
	Endpoint        string // set for S3-compatible hosts; switches to path-style addressing
	AccessKeyID     string
	SecretAccessKey string
	PublicURL       string // overrides the URL prefix handed back to clients
}

// S3Store maps every bucket name onto an S3 bucket of the same name.
type S3Store struct {
	client S3API
	opts   S3Options
}

// NewS3Store builds a client from the default AWS chain, or from static keys when given.
func NewS3Store(ctx context.Context, opts S3Options) (*S3Store, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(opts.Region)}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3StoreWithClient(client, opts), nil
}

func NewS3StoreWithClient(client S3API, opts S3Options) *S3Store {
	opts.Endpoint = strings.TrimRight(opts.Endpoint, "/")
	opts.PublicURL = strings.TrimRight(opts.PublicURL, "/")
	return &S3Store{client: client, opts: opts}
}

func (s *S3Store) url(bucket, key string) string {
	switch {
	case s.opts.PublicURL != "":
		return s.opts.PublicURL + "/" + bucket + "/" + key
	case s.opts.Endpoint != "":
		return s.opts.Endpoint + "/" + bucket + "/" + key
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, s.opts.Region, key)
	}
}

func (s *S3Store) Upload(ctx context.Context, bucket, key, contentType string, body io.Reader, size int64) (Object, error) {
	if err := checkTarget(bucket, key); err != nil {
		return Object{}, err
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String("public, max-age=3600"),
	})
	if err != nil {
		return Object{}, fmt.Errorf("put object %s/%s: %w", bucket, key, err)
	}
	return Object{
		Bucket:      bucket,
		Key:         key,
		URL:         s.url(bucket, key),
		Size:        size,
		HumanSize:   utils.FormatFileSize(size),
		ContentType: contentType,
	}, nil
}

func (s *S3Store) List(ctx context.Context, bucket string) ([]Object, error) {
	if err := checkTarget(bucket, ""); err != nil {
		return nil, err
	}

	out := []Object{}
	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{Bucket: aws.String(bucket)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list bucket %s: %w", bucket, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			size := aws.ToInt64(obj.Size)
			o := Object{
				Bucket:      bucket,
				Key:         key,
				URL:         s.url(bucket, key),
				Size:        size,
				HumanSize:   utils.FormatFileSize(size),
				ContentType: contentTypeFor(key),
			}
			if obj.LastModified != nil {
				o.CreatedAt = obj.LastModified.UTC()
			}
			out = append(out, o)
		}
	}
	return out, nil
}

// Delete removes the object. S3 deletes are idempotent, so existence is checked first to report
// a missing key.
func (s *S3Store) Delete(ctx context.Context, bucket, key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if err := checkTarget(bucket, key); err != nil {
		return err
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{Bucket: aws.String(bucket), Key: aws.String(key)})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("head object %s/%s: %w", bucket, key, err)
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: aws.String(bucket), Key: aws.String(key)})
	if err != nil {
		return fmt.Errorf("delete object %s/%s: %w", bucket, key, err)
	}
	return nil
}
