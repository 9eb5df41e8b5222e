package store

import (
	"context"

	"github.com/MKhiriev/go-qr-redirect/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// QRCodeRepository is the relational persistence of [models.QRCode] rows.
type QRCodeRepository interface {
	Create(ctx context.Context, qrCode models.QRCode) (models.QRCode, error)
	GetByID(ctx context.Context, qrCodeID string) (models.QRCode, error)
	ListByUser(ctx context.Context, userID string) ([]models.QRCode, error)
	Update(ctx context.Context, qrCode models.QRCode) (models.QRCode, error)
	Delete(ctx context.Context, qrCodeID string) error
}

// UserDataRepository keeps the latest payload per user.
type UserDataRepository interface {
	Upsert(ctx context.Context, userData models.UserData) error
}

// ImageArchive stores rendered PNGs outside the database, keyed by qrCodeID.
type ImageArchive interface {
	Put(ctx context.Context, qrCodeID string, png []byte) error
	Remove(ctx context.Context, qrCodeID string) error
}

// QRCodeStorage is what the service layer talks to: the repository plus the
// optional image archive.
type QRCodeStorage interface {
	Save(ctx context.Context, qrCode models.QRCode) (models.QRCode, error)
	Get(ctx context.Context, qrCodeID string) (models.QRCode, error)
	ListByUser(ctx context.Context, userID string) ([]models.QRCode, error)
	Update(ctx context.Context, qrCode models.QRCode) (models.QRCode, error)
	Delete(ctx context.Context, qrCodeID string) error
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
