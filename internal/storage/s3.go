package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// S3Store keeps uploads in an S3 bucket. publicURL, when set, replaces the
// bucket host in returned URLs (for a CDN in front of the bucket).
type S3Store struct {
	client    s3iface.S3API
	bucket    string
	region    string
	publicURL string
	now       func() time.Time
}

// NewS3Store opens an AWS session using the default credential chain.
func NewS3Store(bucket, region, publicURL string) (*S3Store, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, errors.New("s3 bucket is required")
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}

	return newS3Store(s3.New(sess), bucket, region, publicURL), nil
}

func newS3Store(client s3iface.S3API, bucket, region, publicURL string) *S3Store {
	return &S3Store{
		client:    client,
		bucket:    bucket,
		region:    region,
		publicURL: strings.TrimRight(publicURL, "/"),
		now:       time.Now,
	}
}

func (s *S3Store) Driver() string { return "s3" }

func (s *S3Store) Put(ctx context.Context, filename, contentType string, body io.ReadSeeker) (Object, error) {
	now := s.now()
	key := now.Format("2006/01") + "/" + objectName("20060102", filename, now)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObjectWithContext(ctx, input); err != nil {
		return Object{}, fmt.Errorf("put s3 object: %w", err)
	}

	return Object{Key: key, URL: s.objectURL(key)}, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("object key is required")
	}

	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete s3 object: %w", err)
	}
	return nil
}

func (s *S3Store) objectURL(key string) string {
	if s.publicURL != "" {
		return s.publicURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
