package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3API is the subset of the S3 client used by ObjectStore
type S3API interface {
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
	DeleteObjectWithContext(ctx aws.Context, input *s3.DeleteObjectInput, opts ...request.Option) (*s3.DeleteObjectOutput, error)
	GetObjectRequest(input *s3.GetObjectInput) (*request.Request, *s3.GetObjectOutput)
}

// Config holds the configuration for object storage
type Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // optional, for S3 compatible stores such as MinIO
}

// ObjectStore stores documents and profile pictures in a single S3 bucket
type ObjectStore struct {
	client S3API
	bucket string
}

// NewObjectStore creates an ObjectStore backed by AWS S3
func NewObjectStore(config *Config) (*ObjectStore, error) {
	if config.Bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
	}
	if config.AccessKeyID != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(config.AccessKeyID, config.SecretAccessKey, "")
	}
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}

	return NewObjectStoreWithClient(s3.New(sess), config.Bucket), nil
}

// NewObjectStoreWithClient creates an ObjectStore using the given client
func NewObjectStoreWithClient(client S3API, bucket string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket}
}

// Put uploads data under key
func (s *ObjectStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

// Delete removes the object under key. Deleting a missing key is not an error.
func (s *ObjectStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

// PresignGet returns a time-limited download URL for key
func (s *ObjectStore) PresignGet(key string, ttl time.Duration) (string, error) {
	req, _ := s.client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	url, err := req.Presign(ttl)
	if err != nil {
		return "", fmt.Errorf("presign object %s: %w", key, err)
	}
	return url, nil
}
