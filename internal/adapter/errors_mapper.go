package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-qr-redirect/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := responseMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), body)
	}
}

// responseMessage extracts "error" or "message" from a JSON body and falls
// back to the trimmed raw body.
func responseMessage(raw []byte) string {
	var errResp models.ErrorResponse
	if json.Unmarshal(raw, &errResp) == nil && errResp.Error != "" {
		return errResp.Error
	}

	var msgResp models.MessageResponse
	if json.Unmarshal(raw, &msgResp) == nil && msgResp.Message != "" {
		return msgResp.Message
	}

	return strings.TrimSpace(string(raw))
}
