package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-qr-redirect/internal/config"
	"github.com/MKhiriev/go-qr-redirect/internal/logger"
	"github.com/MKhiriev/go-qr-redirect/migrations"
)

const (
	transientRetries = 2
	transientBackoff = 50 * time.Millisecond
)

// DB wraps a *sql.DB together with the driver-specific pieces repositories
// need: the placeholder format and the error classifier.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a connection for cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate brings the schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver)
}

// builder returns a squirrel statement builder using the driver's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return statementBuilder(db.driver)
}

// withRetry runs fn and repeats it while the classifier reports the failure
// as transient.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(transientRetries, retry.NewExponential(transientBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "*DB.withRetry").Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}
