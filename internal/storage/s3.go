package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	s3Config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"

	"portfolioservice/internal/config"
	errdefs "portfolioservice/internal/errors"
	"portfolioservice/internal/logging"
	"portfolioservice/internal/utils"
)

const (
	s3MaxRetries = 3
	s3BaseDelay  = 200 * time.Millisecond
)

type S3API interface {
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

func NewS3Client(ctx context.Context, cfg *config.Config) (*s3.Client, error) {
	s3Cfg, err := s3Config.LoadDefaultConfig(ctx,
		s3Config.WithRegion(cfg.S3Region),
		s3Config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.S3AccessKeyID,
				cfg.S3SecretAccessKey,
				"",
			),
		),
	)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(s3Cfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = true
	}), nil
}

// S3Store keeps attachments as objects under the uploads/ prefix of one bucket.
type S3Store struct {
	client S3API
	bucket string
	cb     *utils.CircuitBreaker
}

func NewS3Store(ctx context.Context, client S3API, bucket string) (*S3Store, error) {
	s := &S3Store{
		client: client,
		bucket: bucket,
		cb:     utils.NewCircuitBreaker(5, 30*time.Second),
	}
	return s, s.createBucket(ctx)
}

func (s *S3Store) createBucket(ctx context.Context) error {
	_, err := s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		var opErr *awshttp.ResponseError
		if errors.As(err, &opErr) && opErr.HTTPStatusCode() == 409 {
			logging.FromContext(ctx).Info(ctx, "Bucket already exists", zap.String("bucket", s.bucket))
			return nil
		}
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	return nil
}

func (s *S3Store) Save(ctx context.Context, r io.Reader, originalName string) (string, error) {
	ref, err := newRef(originalName)
	if err != nil {
		return "", err
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	contentType := mime.TypeByExtension(path.Ext(ref))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = utils.RetryWithCircuitBreaker(ctx, s.cb, s3MaxRetries, s3BaseDelay, func() (*s3.PutObjectOutput, error) {
		return s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String(ref),
			Body:        bytes.NewReader(body),
			ContentType: aws.String(contentType),
		})
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %v: %w", ref, err, errdefs.ErrDependency)
	}
	return ref, nil
}

func (s *S3Store) Read(ctx context.Context, ref string) ([]byte, error) {
	key, err := s.key(ref)
	if err != nil {
		return nil, err
	}
	out, err := utils.RetryWithCircuitBreaker(ctx, s.cb, s3MaxRetries, s3BaseDelay, func() (*s3.GetObjectOutput, error) {
		return s.client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("attachment %s: %w", ref, errdefs.ErrNotFound)
		}
		return nil, fmt.Errorf("get object %s: %v: %w", ref, err, errdefs.ErrDependency)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %v: %w", ref, err, errdefs.ErrDependency)
	}
	return data, nil
}

func (s *S3Store) Delete(ctx context.Context, ref string) error {
	key, err := s.key(ref)
	if err != nil {
		return err
	}
	_, err = utils.RetryWithCircuitBreaker(ctx, s.cb, s3MaxRetries, s3BaseDelay, func() (*s3.DeleteObjectOutput, error) {
		return s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("delete object %s: %v: %w", ref, err, errdefs.ErrDependency)
	}
	return nil
}

func (s *S3Store) List(ctx context.Context) ([]Object, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(RefPrefix),
	})
	var objects []Object
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list objects: %v: %w", err, errdefs.ErrDependency)
		}
		for _, obj := range page.Contents {
			o := Object{Ref: aws.ToString(obj.Key)}
			if obj.LastModified != nil {
				o.ModTime = *obj.LastModified
			}
			objects = append(objects, o)
		}
	}
	return objects, nil
}

func (s *S3Store) key(ref string) (string, error) {
	name, err := objectName(ref)
	if err != nil {
		return "", err
	}
	return RefPrefix + name, nil
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var respErr *awshttp.ResponseError
	return errors.As(err, &respErr) && respErr.HTTPStatusCode() == 404
}
