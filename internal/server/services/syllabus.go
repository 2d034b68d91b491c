package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/devnest/internal/common"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// SyllabusURLValidity is how long presigned syllabus URLs stay usable.
const SyllabusURLValidity = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// SyllabusStorageKey returns a fresh object key for a course syllabus.
func SyllabusStorageKey(courseID uuid.UUID) string {
	d := time.Now()
	return fmt.Sprintf("courses/%v/%d/%02d/%v.pdf", courseID, d.Year(), d.Month(), uuid.New())
}

func (s *CourseService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// SyllabusUploadURL allocates a new syllabus key for the course, records it
// and returns a presigned PUT URL for it.
func (s *CourseService) SyllabusUploadURL(ctx context.Context, courseID uuid.UUID) (string, error) {
	repo := s.repo()

	if _, err := s.find(ctx, repo, courseID); err != nil {
		return "", err
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", fmt.Errorf("error creating presign client: %w", err)
	}

	bucket := s.config.S3Bucket
	key := SyllabusStorageKey(courseID)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(SyllabusURLValidity))
	if err != nil {
		return "", fmt.Errorf("error presigning upload: %w", err)
	}

	if err := repo.SetSyllabusKey(ctx, courseID, key); err != nil {
		return "", fmt.Errorf("error saving syllabus key: %w", err)
	}

	return req.URL, nil
}

// SyllabusDownloadURL returns a presigned GET URL for the course syllabus,
// or common.ErrorNoSyllabus when none was uploaded.
func (s *CourseService) SyllabusDownloadURL(ctx context.Context, courseID uuid.UUID) (string, error) {
	c, err := s.Get(ctx, courseID)
	if err != nil {
		return "", err
	}
	if c.SyllabusKey == "" {
		return "", common.ErrorNoSyllabus
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", fmt.Errorf("error creating presign client: %w", err)
	}

	bucket := s.config.S3Bucket
	key := c.SyllabusKey

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(SyllabusURLValidity))
	if err != nil {
		return "", fmt.Errorf("error presigning download: %w", err)
	}

	return req.URL, nil
}
