package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-qr-redirect/internal/config"
	"github.com/MKhiriev/go-qr-redirect/models"
)

const (
	qrCodesTable  = "qr_codes"
	userDataTable = "user_data"
)

// qrCodeColumns is the scan order used by every qr_codes SELECT.
var qrCodeColumns = []string{
	"qr_code_id",
	"user_id",
	"data",
	"qr_code_image",
	"qr_data",
	"created_at",
	"updated_at",
}

func statementBuilder(driver string) sq.StatementBuilderType {
	if driver == config.DriverSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func buildInsertQRCodeQuery(b sq.StatementBuilderType, qrCode models.QRCode) (string, []any, error) {
	query, args, err := b.Insert(qrCodesTable).
		Columns(qrCodeColumns...).
		Values(
			qrCode.QRCodeID,
			qrCode.UserID,
			qrCode.Data,
			qrCode.QRCodeImage,
			qrCode.QRData,
			qrCode.CreatedAt,
			qrCode.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectQRCodeByIDQuery(b sq.StatementBuilderType, qrCodeID string) (string, []any, error) {
	query, args, err := b.Select(qrCodeColumns...).
		From(qrCodesTable).
		Where(sq.Eq{"qr_code_id": qrCodeID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectQRCodesByUserQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	query, args, err := b.Select(qrCodeColumns...).
		From(qrCodesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateQRCodeQuery overwrites the mutable columns of one row.
// qr_code_id and user_id are never changed.
func buildUpdateQRCodeQuery(b sq.StatementBuilderType, qrCode models.QRCode) (string, []any, error) {
	query, args, err := b.Update(qrCodesTable).
		Set("data", qrCode.Data).
		Set("qr_code_image", qrCode.QRCodeImage).
		Set("qr_data", qrCode.QRData).
		Set("updated_at", qrCode.UpdatedAt).
		Where(sq.Eq{"qr_code_id": qrCode.QRCodeID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteQRCodeQuery(b sq.StatementBuilderType, qrCodeID string) (string, []any, error) {
	query, args, err := b.Delete(qrCodesTable).
		Where(sq.Eq{"qr_code_id": qrCodeID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertUserDataQuery inserts a user_data row or overwrites its data.
// ON CONFLICT ... DO UPDATE is understood by both PostgreSQL and SQLite.
func buildUpsertUserDataQuery(b sq.StatementBuilderType, userData models.UserData, now time.Time) (string, []any, error) {
	query, args, err := b.Insert(userDataTable).
		Columns("user_id", "data", "created_at", "updated_at").
		Values(userData.UserID, userData.Data, now, now).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
