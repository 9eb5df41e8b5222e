// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-qr-redirect/internal/logger"
	"github.com/MKhiriev/go-qr-redirect/internal/qrcode"
	"github.com/MKhiriev/go-qr-redirect/models"
)

// qrCodeStorage is the default implementation of [QRCodeStorage].
//
// It delegates relational operations to a [QRCodeRepository] and mirrors
// rendered images into an [ImageArchive]. The database is the source of
// truth: archive failures are logged and never returned to the caller.
type qrCodeStorage struct {
	repository QRCodeRepository
	archive    ImageArchive
	logger     *logger.Logger
}

// NewQRCodeStorage constructs a [QRCodeStorage]. A nil archive is replaced
// with a no-op one.
func NewQRCodeStorage(repository QRCodeRepository, archive ImageArchive, logger *logger.Logger) QRCodeStorage {
	logger.Debug().Msg("creating qr code storage")

	if archive == nil {
		archive = NewNoopImageArchive()
	}

	return &qrCodeStorage{
		repository: repository,
		archive:    archive,
		logger:     logger,
	}
}

// Save inserts qrCode and archives its image.
func (s *qrCodeStorage) Save(ctx context.Context, qrCode models.QRCode) (models.QRCode, error) {
	saved, err := s.repository.Create(ctx, qrCode)
	if err != nil {
		return models.QRCode{}, err
	}

	s.archiveImage(ctx, saved)
	return saved, nil
}

func (s *qrCodeStorage) Get(ctx context.Context, qrCodeID string) (models.QRCode, error) {
	return s.repository.GetByID(ctx, qrCodeID)
}

func (s *qrCodeStorage) ListByUser(ctx context.Context, userID string) ([]models.QRCode, error) {
	return s.repository.ListByUser(ctx, userID)
}

// Update persists the new fields and re-archives the image.
func (s *qrCodeStorage) Update(ctx context.Context, qrCode models.QRCode) (models.QRCode, error) {
	updated, err := s.repository.Update(ctx, qrCode)
	if err != nil {
		return models.QRCode{}, err
	}

	s.archiveImage(ctx, updated)
	return updated, nil
}

// Delete removes the row and then its archived image.
func (s *qrCodeStorage) Delete(ctx context.Context, qrCodeID string) error {
	if err := s.repository.Delete(ctx, qrCodeID); err != nil {
		return err
	}

	if err := s.archive.Remove(ctx, qrCodeID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*qrCodeStorage.Delete").
			Str("qr_code_id", qrCodeID).
			Msg("failed to remove archived image")
	}

	return nil
}

func (s *qrCodeStorage) archiveImage(ctx context.Context, qrCode models.QRCode) {
	log := logger.FromContext(ctx)

	png, err := qrcode.DecodeDataURL(qrCode.QRCodeImage)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "*qrCodeStorage.archiveImage").
			Str("qr_code_id", qrCode.QRCodeID).
			Msg("stored image is not a png data url, skipping archive")
		return
	}

	if err = s.archive.Put(ctx, qrCode.QRCodeID, png); err != nil {
		log.Warn().Err(err).
			Str("func", "*qrCodeStorage.archiveImage").
			Str("qr_code_id", qrCode.QRCodeID).
			Msg("failed to archive image")
	}
}
