package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qr-redirect/internal/logger"
	"github.com/MKhiriev/go-qr-redirect/internal/qrcode"
	"github.com/MKhiriev/go-qr-redirect/internal/store"
)

type redirectService struct {
	storage store.QRCodeStorage

	logger *logger.Logger
}

func NewRedirectService(storage store.QRCodeStorage, logger *logger.Logger) RedirectService {
	return &redirectService{
		storage: storage,
		logger:  logger,
	}
}

// Resolve returns the current data of qrCodeID, which is the redirect target.
func (s *redirectService) Resolve(ctx context.Context, qrCodeID string) (string, error) {
	if strings.TrimSpace(qrCodeID) == "" {
		return "", fmt.Errorf("%w: empty qr code id", ErrInvalidDataProvided)
	}

	qrCode, err := s.storage.Get(ctx, qrCodeID)
	if err != nil {
		return "", fmt.Errorf("error resolving qr code: %w", err)
	}

	return qrCode.Data, nil
}

func (s *redirectService) Image(ctx context.Context, qrCodeID string) ([]byte, error) {
	if strings.TrimSpace(qrCodeID) == "" {
		return nil, fmt.Errorf("%w: empty qr code id", ErrInvalidDataProvided)
	}

	qrCode, err := s.storage.Get(ctx, qrCodeID)
	if err != nil {
		return nil, fmt.Errorf("error getting qr code image: %w", err)
	}

	png, err := qrcode.DecodeDataURL(qrCode.QRCodeImage)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*redirectService.Image").
			Str("qr_code_id", qrCodeID).
			Msg("stored image cannot be decoded")
		return nil, fmt.Errorf("error decoding qr code image: %w", err)
	}

	return png, nil
}
