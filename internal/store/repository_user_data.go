package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-qr-redirect/internal/logger"
	"github.com/MKhiriev/go-qr-redirect/models"
)

type userDataRepository struct {
	*DB
	logger *logger.Logger
}

func NewUserDataRepository(db *DB, logger *logger.Logger) UserDataRepository {
	logger.Debug().Msg("creating user data repository")
	return &userDataRepository{
		DB:     db,
		logger: logger,
	}
}

// Upsert stores userData.Data as the latest payload for userData.UserID,
// creating the row on first use.
func (r *userDataRepository) Upsert(ctx context.Context, userData models.UserData) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertUserDataQuery(r.builder(), userData, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*userDataRepository.Upsert").Msg("failed to create query")
		return err
	}

	err = r.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*userDataRepository.Upsert").
			Str("user_id", userData.UserID).
			Msg("failed to upsert user data")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
