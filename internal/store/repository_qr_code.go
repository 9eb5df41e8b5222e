package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-qr-redirect/internal/logger"
	"github.com/MKhiriev/go-qr-redirect/models"
)

// qrCodeRepository is the SQL implementation of [QRCodeRepository] over the
// "qr_codes" table. It works with both PostgreSQL and SQLite; the embedded
// [*DB] supplies the placeholder format and error classification.
type qrCodeRepository struct {
	*DB
	logger *logger.Logger
}

// NewQRCodeRepository constructs a [QRCodeRepository] backed by db.
func NewQRCodeRepository(db *DB, logger *logger.Logger) QRCodeRepository {
	logger.Debug().Msg("creating qr code repository")
	return &qrCodeRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts a new row and returns it with CreatedAt/UpdatedAt set.
//
// A unique violation on qr_code_id is reported as [ErrQRCodeIDAlreadyExists]
// so the caller can regenerate the identifier.
func (r *qrCodeRepository) Create(ctx context.Context, qrCode models.QRCode) (models.QRCode, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	qrCode.CreatedAt = &now
	qrCode.UpdatedAt = &now

	query, args, err := buildInsertQRCodeQuery(r.builder(), qrCode)
	if err != nil {
		log.Err(err).Str("func", "*qrCodeRepository.Create").Msg("failed to create query")
		return models.QRCode{}, err
	}

	err = r.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.isUniqueViolation(err) {
			log.Warn().
				Str("func", "*qrCodeRepository.Create").
				Str("qr_code_id", qrCode.QRCodeID).
				Msg("qr code id already exists")
			return models.QRCode{}, ErrQRCodeIDAlreadyExists
		}

		log.Err(err).
			Str("func", "*qrCodeRepository.Create").
			Str("qr_code_id", qrCode.QRCodeID).
			Msg("failed to insert qr code")
		return models.QRCode{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return qrCode, nil
}

// GetByID returns the row identified by qrCodeID or [ErrQRCodeNotFound].
func (r *qrCodeRepository) GetByID(ctx context.Context, qrCodeID string) (models.QRCode, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectQRCodeByIDQuery(r.builder(), qrCodeID)
	if err != nil {
		log.Err(err).Str("func", "*qrCodeRepository.GetByID").Msg("failed to create query")
		return models.QRCode{}, err
	}

	var qrCode models.QRCode
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return scanQRCode(r.DB.QueryRowContext(ctx, query, args...), &qrCode)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.QRCode{}, ErrQRCodeNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*qrCodeRepository.GetByID").
			Str("qr_code_id", qrCodeID).
			Msg("failed to get qr code")
		return models.QRCode{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return qrCode, nil
}

// ListByUser returns every row owned by userID ordered by creation time.
// An empty, non-nil slice is returned when the user has no codes.
func (r *qrCodeRepository) ListByUser(ctx context.Context, userID string) ([]models.QRCode, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectQRCodesByUserQuery(r.builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*qrCodeRepository.ListByUser").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*qrCodeRepository.ListByUser").
			Str("user_id", userID).
			Msg("failed to execute query for listing qr codes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	qrCodes := make([]models.QRCode, 0, 16)
	for rows.Next() {
		var qrCode models.QRCode
		if scanErr := scanQRCode(rows, &qrCode); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*qrCodeRepository.ListByUser").
				Str("user_id", userID).
				Msg("failed to scan qr code row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		qrCodes = append(qrCodes, qrCode)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*qrCodeRepository.ListByUser").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return qrCodes, nil
}

// Update overwrites data, image and target URL of an existing row and bumps
// updated_at. Zero affected rows means [ErrQRCodeNotFound].
func (r *qrCodeRepository) Update(ctx context.Context, qrCode models.QRCode) (models.QRCode, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	qrCode.UpdatedAt = &now

	query, args, err := buildUpdateQRCodeQuery(r.builder(), qrCode)
	if err != nil {
		log.Err(err).Str("func", "*qrCodeRepository.Update").Msg("failed to create query")
		return models.QRCode{}, err
	}

	var result sql.Result
	err = r.withRetry(ctx, func(ctx context.Context) error {
		var execErr error
		result, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*qrCodeRepository.Update").
			Str("qr_code_id", qrCode.QRCodeID).
			Msg("failed to update qr code")
		return models.QRCode{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = requireAffected(result); err != nil {
		log.Warn().Err(err).
			Str("func", "*qrCodeRepository.Update").
			Str("qr_code_id", qrCode.QRCodeID).
			Msg("no qr code was updated")
		return models.QRCode{}, err
	}

	return qrCode, nil
}

// Delete removes the row identified by qrCodeID. Zero affected rows means
// [ErrQRCodeNotFound].
func (r *qrCodeRepository) Delete(ctx context.Context, qrCodeID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQRCodeQuery(r.builder(), qrCodeID)
	if err != nil {
		log.Err(err).Str("func", "*qrCodeRepository.Delete").Msg("failed to create query")
		return err
	}

	var result sql.Result
	err = r.withRetry(ctx, func(ctx context.Context) error {
		var execErr error
		result, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*qrCodeRepository.Delete").
			Str("qr_code_id", qrCodeID).
			Msg("failed to delete qr code")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = requireAffected(result); err != nil {
		log.Warn().Err(err).
			Str("func", "*qrCodeRepository.Delete").
			Str("qr_code_id", qrCodeID).
			Msg("no qr code was deleted")
		return err
	}

	log.Info().
		Str("func", "*qrCodeRepository.Delete").
		Str("qr_code_id", qrCodeID).
		Msg("qr code deleted")

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQRCode(row rowScanner, qrCode *models.QRCode) error {
	return row.Scan(
		&qrCode.QRCodeID,
		&qrCode.UserID,
		&qrCode.Data,
		&qrCode.QRCodeImage,
		&qrCode.QRData,
		&qrCode.CreatedAt,
		&qrCode.UpdatedAt,
	)
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrQRCodeNotFound
	}
	return nil
}
