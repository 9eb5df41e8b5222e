package service

import (
	"context"

	"github.com/MKhiriev/go-qr-redirect/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// QRCodeService manages QR code redirect mappings on behalf of a user.
type QRCodeService interface {
	Create(ctx context.Context, req models.GenerateRequest) (models.QRCodeView, error)
	List(ctx context.Context, userID string) ([]models.QRCode, error)
	Update(ctx context.Context, req models.UpdateRequest) (models.QRCodeView, error)
	Delete(ctx context.Context, req models.DeleteRequest) error
}

// RedirectService resolves scanned codes.
type RedirectService interface {
	// Resolve returns the redirect target stored for qrCodeID.
	Resolve(ctx context.Context, qrCodeID string) (string, error)
	// Image returns the stored PNG of qrCodeID.
	Image(ctx context.Context, qrCodeID string) ([]byte, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IdentifierGenerator derives a short code identifier for a user.
type IdentifierGenerator interface {
	Generate(userID string) string
}

// QRRenderer renders content into an embeddable image string.
type QRRenderer interface {
	Render(content string) (string, error)
}
