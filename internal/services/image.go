package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"foodie-finder-backend/internal/models"
	"foodie-finder-backend/internal/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const presignTTL = 5 * time.Minute

// ImageStore is the persistence surface ImageService depends on.
type ImageStore interface {
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
	AppendImage(ctx context.Context, id, url string) error
}

// ImageService issues pre-signed S3 upload URLs for restaurant images and
// records the resulting public URLs on the restaurant.
type ImageService struct {
	restaurants   ImageStore
	s3Client      *s3.Client
	bucket        string
	region        string
	publicBaseURL string
}

// NewImageService creates a new image service
func NewImageService(restaurants ImageStore, region, bucket, accessKey, secretKey, endpoint, publicBaseURL string) (*ImageService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &ImageService{
		restaurants:   restaurants,
		s3Client:      s3Client,
		bucket:        bucket,
		region:        region,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

// UploadResponse carries a pre-signed upload URL
type UploadResponse struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expires_in"`
}

// PresignUpload generates a pre-signed PUT URL for a restaurant image
func (s *ImageService) PresignUpload(ctx context.Context, restaurantID, contentType string) (*UploadResponse, error) {
	if _, err := s.restaurants.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve restaurant: %w", err)
	}

	key := fmt.Sprintf("restaurants/%s/%s.jpg", restaurantID, uuid.New().String())

	presignClient := s3.NewPresignClient(s.s3Client)
	request, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = presignTTL
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate pre-signed URL: %w", err)
	}

	return &UploadResponse{
		UploadURL: request.URL,
		Key:       key,
		ExpiresIn: int(presignTTL.Seconds()),
	}, nil
}

// ConfirmUpload appends the public URL for an uploaded key to the
// restaurant's image list and returns it.
func (s *ImageService) ConfirmUpload(ctx context.Context, restaurantID, key string) (string, error) {
	prefix := fmt.Sprintf("restaurants/%s/", restaurantID)
	if !strings.HasPrefix(key, prefix) {
		return "", fmt.Errorf("%w: key does not belong to restaurant", ErrInvalidArgument)
	}

	url := s.publicURL(key)
	if err := s.restaurants.AppendImage(ctx, restaurantID, url); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to record image: %w", err)
	}
	return url, nil
}

func (s *ImageService) publicURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
