// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package media issues pre-signed object storage URLs for catalog images.
package media

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/vip-motors/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrBucketNotConfigured = errors.New("media bucket is not configured")

// Presigner signs direct uploads into the media bucket.
type Presigner interface {
	PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (PresignedRequest, error)
}

// PresignedRequest is what a client needs to perform the upload.
type PresignedRequest struct {
	URL    string
	Method string
	Header http.Header
}

type putPresigner interface {
	PresignPutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Presigner signs PUT requests against an S3 compatible bucket.
type S3Presigner struct {
	bucket string
	client putPresigner
}

// NewS3Presigner builds a presigner from the media configuration. Static
// credentials are used when both keys are set, the default AWS chain
// otherwise. A custom endpoint switches to path-style addressing for MinIO
// and LocalStack.
func NewS3Presigner(ctx context.Context, cfg config.Media) (*S3Presigner, error) {
	if cfg.Bucket == "" {
		return nil, ErrBucketNotConfigured
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Presigner{
		bucket: cfg.Bucket,
		client: s3.NewPresignClient(client),
	}, nil
}

func (p *S3Presigner) PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (PresignedRequest, error) {
	req, err := p.client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return PresignedRequest{}, fmt.Errorf("error presigning upload: %w", err)
	}

	return PresignedRequest{
		URL:    req.URL,
		Method: req.Method,
		Header: req.SignedHeader,
	}, nil
}
