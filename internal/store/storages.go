package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-redirect/internal/config"
	"github.com/MKhiriev/go-qr-redirect/internal/logger"
)

// Storages bundles everything the service layer persists through.
type Storages struct {
	DB *DB

	QRCodeStorage      QRCodeStorage
	UserDataRepository UserDataRepository
}

// NewStorages connects to the configured database, applies migrations and
// wires the repositories. The image archive is enabled only when
// cfg.Images.Endpoint is set.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	archive := NewNoopImageArchive()
	if cfg.Images.Endpoint != "" {
		archive, err = NewMinioImageArchive(ctx, cfg.Images, logger)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("error creating image archive: %w", err)
		}
	}

	return NewStoragesFromDB(db, archive, logger), nil
}

// NewStoragesFromDB wires repositories over an already migrated db.
func NewStoragesFromDB(db *DB, archive ImageArchive, logger *logger.Logger) *Storages {
	return &Storages{
		DB:                 db,
		QRCodeStorage:      NewQRCodeStorage(NewQRCodeRepository(db, logger), archive, logger),
		UserDataRepository: NewUserDataRepository(db, logger),
	}
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
