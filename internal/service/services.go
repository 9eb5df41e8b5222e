package service

import (
	"fmt"

	"github.com/MKhiriev/go-qr-redirect/internal/config"
	"github.com/MKhiriev/go-qr-redirect/internal/identifier"
	"github.com/MKhiriev/go-qr-redirect/internal/logger"
	"github.com/MKhiriev/go-qr-redirect/internal/qrcode"
	"github.com/MKhiriev/go-qr-redirect/internal/store"
)

type Services struct {
	QRCodeService   QRCodeService
	RedirectService RedirectService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	qrCodeService := NewQRCodeService(
		storages.QRCodeStorage,
		storages.UserDataRepository,
		identifier.NewGenerator(),
		qrcode.NewRenderer(),
		cfg.App,
		logger,
	)

	return &Services{
		QRCodeService:   NewQRCodeValidationService().Wrap(qrCodeService),
		RedirectService: NewRedirectService(storages.QRCodeStorage, logger),
		AppInfoService:  appInfoService,
	}, nil
}
