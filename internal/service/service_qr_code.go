// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-qr-redirect/internal/config"
	"github.com/MKhiriev/go-qr-redirect/internal/logger"
	"github.com/MKhiriev/go-qr-redirect/internal/store"
	"github.com/MKhiriev/go-qr-redirect/models"
)

// RedirectPathPrefix is the path under which scanned codes are resolved.
const RedirectPathPrefix = "/api/qr/"

// collisionBackoff lets the millisecond clock advance before the identifier
// is regenerated.
const collisionBackoff = time.Millisecond

type qrCodeService struct {
	storage  store.QRCodeStorage
	userData store.UserDataRepository

	generator IdentifierGenerator
	renderer  QRRenderer

	baseURL     string
	maxAttempts int

	logger *logger.Logger
}

// NewQRCodeService constructs the core [QRCodeService]. It performs no input
// validation; wrap it with [NewQRCodeValidationService] for that.
func NewQRCodeService(
	storage store.QRCodeStorage,
	userData store.UserDataRepository,
	generator IdentifierGenerator,
	renderer QRRenderer,
	cfg config.App,
	logger *logger.Logger,
) QRCodeService {
	maxAttempts := cfg.IDMaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &qrCodeService{
		storage:     storage,
		userData:    userData,
		generator:   generator,
		renderer:    renderer,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// Create upserts the user's latest payload and inserts a new mapping.
//
// The UserData upsert is not rolled back if the insert fails. A taken
// identifier is regenerated up to maxAttempts times.
func (s *qrCodeService) Create(ctx context.Context, req models.GenerateRequest) (models.QRCodeView, error) {
	log := logger.FromContext(ctx)

	if err := s.userData.Upsert(ctx, models.UserData{UserID: req.UserID, Data: req.Data}); err != nil {
		return models.QRCodeView{}, fmt.Errorf("error saving user data: %w", err)
	}

	var saved models.QRCode
	backoff := retry.WithMaxRetries(uint64(s.maxAttempts-1), retry.NewConstant(collisionBackoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		qrCode, err := s.newQRCode(req.UserID, req.Data)
		if err != nil {
			return err
		}

		saved, err = s.storage.Save(ctx, qrCode)
		if errors.Is(err, store.ErrQRCodeIDAlreadyExists) {
			log.Warn().
				Str("func", "*qrCodeService.Create").
				Str("qr_code_id", qrCode.QRCodeID).
				Msg("generated qr code id is taken, regenerating")
			return retry.RetryableError(err)
		}
		return err
	})
	if errors.Is(err, store.ErrQRCodeIDAlreadyExists) {
		log.Error().
			Str("func", "*qrCodeService.Create").
			Str("user_id", req.UserID).
			Int("attempts", s.maxAttempts).
			Msg("all generated qr code ids were taken")
		return models.QRCodeView{}, fmt.Errorf("%w: %w", ErrIdentifierCollision, err)
	}
	if err != nil {
		return models.QRCodeView{}, fmt.Errorf("error creating qr code: %w", err)
	}

	log.Info().
		Str("func", "*qrCodeService.Create").
		Str("qr_code_id", saved.QRCodeID).
		Str("user_id", saved.UserID).
		Msg("qr code created")

	return saved.View(), nil
}

// List returns the user's mappings; an unknown user gets an empty slice.
func (s *qrCodeService) List(ctx context.Context, userID string) ([]models.QRCode, error) {
	qrCodes, err := s.storage.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing qr codes: %w", err)
	}

	if qrCodes == nil {
		qrCodes = []models.QRCode{}
	}

	return qrCodes, nil
}

// Update replaces the redirect target of a mapping owned by req.UserID.
// The image is re-rendered for the unchanged redirect URL.
func (s *qrCodeService) Update(ctx context.Context, req models.UpdateRequest) (models.QRCodeView, error) {
	existing, err := s.ownedQRCode(ctx, req.QRCodeID, req.UserID)
	if err != nil {
		return models.QRCodeView{}, err
	}

	qrCode := existing
	qrCode.Data = req.Data
	qrCode.QRData = s.redirectURL(existing.QRCodeID)
	if qrCode.QRCodeImage, err = s.renderer.Render(qrCode.QRData); err != nil {
		return models.QRCodeView{}, fmt.Errorf("error rendering qr code: %w", err)
	}

	updated, err := s.storage.Update(ctx, qrCode)
	if err != nil {
		return models.QRCodeView{}, fmt.Errorf("error updating qr code: %w", err)
	}

	return updated.View(), nil
}

// Delete removes a mapping owned by req.UserID.
func (s *qrCodeService) Delete(ctx context.Context, req models.DeleteRequest) error {
	if _, err := s.ownedQRCode(ctx, req.QRCodeID, req.UserID); err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, req.QRCodeID); err != nil {
		return fmt.Errorf("error deleting qr code: %w", err)
	}

	return nil
}

// ownedQRCode loads qrCodeID and checks that userID owns it.
func (s *qrCodeService) ownedQRCode(ctx context.Context, qrCodeID, userID string) (models.QRCode, error) {
	qrCode, err := s.storage.Get(ctx, qrCodeID)
	if err != nil {
		return models.QRCode{}, fmt.Errorf("error getting qr code: %w", err)
	}

	if qrCode.UserID != userID {
		logger.FromContext(ctx).Warn().
			Str("func", "*qrCodeService.ownedQRCode").
			Str("qr_code_id", qrCodeID).
			Str("user_id", userID).
			Msg("access to qr code of a different user")
		return models.QRCode{}, ErrUnauthorizedAccessToDifferentUserData
	}

	return qrCode, nil
}

// newQRCode generates an identifier and renders the redirect URL for it.
func (s *qrCodeService) newQRCode(userID, data string) (models.QRCode, error) {
	qrCodeID := s.generator.Generate(userID)
	targetURL := s.redirectURL(qrCodeID)

	image, err := s.renderer.Render(targetURL)
	if err != nil {
		return models.QRCode{}, fmt.Errorf("error rendering qr code: %w", err)
	}

	return models.QRCode{
		QRCodeID:    qrCodeID,
		UserID:      userID,
		Data:        data,
		QRCodeImage: image,
		QRData:      targetURL,
	}, nil
}

func (s *qrCodeService) redirectURL(qrCodeID string) string {
	return s.baseURL + RedirectPathPrefix + qrCodeID
}
