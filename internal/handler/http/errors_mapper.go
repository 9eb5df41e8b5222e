package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-qr-redirect/internal/app"
	"github.com/MKhiriev/go-qr-redirect/internal/logger"
	"github.com/MKhiriev/go-qr-redirect/internal/service"
	"github.com/MKhiriev/go-qr-redirect/internal/store"
	"github.com/MKhiriev/go-qr-redirect/internal/utils"
	"github.com/MKhiriev/go-qr-redirect/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:                   http.StatusBadRequest,
	service.ErrUnauthorizedAccessToDifferentUserData: http.StatusForbidden,
	service.ErrIdentifierCollision:                   http.StatusInternalServerError,
	service.ErrEmptyPayload:                          http.StatusInternalServerError,

	store.ErrQRCodeNotFound:        http.StatusNotFound,
	store.ErrQRCodeIDAlreadyExists: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError answers with the JSON body matching err's status.
// Server errors carry failureMessage instead of the error text.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, funcName, failureMessage string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var body any
	switch status {
	case http.StatusNotFound:
		body = models.MessageResponse{Message: app.MsgQRCodeNotFound}
	case http.StatusForbidden:
		body = models.MessageResponse{Message: app.MsgUnauthorized}
	case http.StatusBadRequest:
		body = models.ErrorResponse{Error: app.MsgInvalidDataProvided}
	default:
		body = models.ErrorResponse{Error: failureMessage}
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg(failureMessage)
	} else {
		log.Warn().Err(err).Str("func", funcName).Int("status", status).Send()
	}

	if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
		log.Err(writeErr).Str("func", funcName).Msg("error writing error response")
	}
}
