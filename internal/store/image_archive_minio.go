// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/MKhiriev/go-qr-redirect/internal/config"
	"github.com/MKhiriev/go-qr-redirect/internal/logger"
)

const pngContentType = "image/png"

// minioAPI is the subset of *minio.Client the archive uses.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// minioImageArchive keeps one "<qrCodeID>.png" object per QR code.
type minioImageArchive struct {
	api    minioAPI
	bucket string
	logger *logger.Logger
}

// NewMinioImageArchive connects to cfg.Endpoint and makes sure the bucket
// exists.
func NewMinioImageArchive(ctx context.Context, cfg config.Images, logger *logger.Logger) (ImageArchive, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return newMinioImageArchiveWithAPI(ctx, client, cfg.Bucket, logger)
}

func newMinioImageArchiveWithAPI(ctx context.Context, api minioAPI, bucket string, logger *logger.Logger) (*minioImageArchive, error) {
	a := &minioImageArchive{
		api:    api,
		bucket: bucket,
		logger: logger,
	}

	if err := a.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	logger.Info().Str("bucket", bucket).Msg("qr image archive is ready")
	return a, nil
}

func (a *minioImageArchive) ensureBucketExists(ctx context.Context) error {
	exists, err := a.api.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err = a.api.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// Put uploads png, replacing any previous image of the same code.
func (a *minioImageArchive) Put(ctx context.Context, qrCodeID string, png []byte) error {
	_, err := a.api.PutObject(ctx, a.bucket, objectName(qrCodeID), bytes.NewReader(png), int64(len(png)),
		minio.PutObjectOptions{ContentType: pngContentType})
	if err != nil {
		return fmt.Errorf("%w: upload %s: %w", ErrArchivingImage, qrCodeID, err)
	}

	return nil
}

func (a *minioImageArchive) Remove(ctx context.Context, qrCodeID string) error {
	err := a.api.RemoveObject(ctx, a.bucket, objectName(qrCodeID), minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("%w: remove %s: %w", ErrArchivingImage, qrCodeID, err)
	}

	return nil
}

func objectName(qrCodeID string) string {
	return qrCodeID + ".png"
}
