package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qr-redirect/models"
)

const (
	FieldUserID   = "userId"
	FieldData     = "data"
	FieldQRCodeID = "qrCodeId"
)

// MaxDataLength bounds the stored redirect target.
const MaxDataLength = 8192

// QRCodeValidator checks request models of the QR code API. Only presence
// and size are checked; data is stored verbatim.
type QRCodeValidator struct {
}

func NewQRCodeValidator() Validator {
	return &QRCodeValidator{}
}

// Validate accepts [models.GenerateRequest], [models.UpdateRequest] and
// [models.DeleteRequest] (values or pointers). When fields are given only
// those are checked.
func (v *QRCodeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.GenerateRequest:
		return v.validateFields(fields, map[string]string{
			FieldUserID: value.UserID,
			FieldData:   value.Data,
		})
	case *models.GenerateRequest:
		return v.Validate(ctx, *value, fields...)

	case models.UpdateRequest:
		return v.validateFields(fields, map[string]string{
			FieldQRCodeID: value.QRCodeID,
			FieldUserID:   value.UserID,
			FieldData:     value.Data,
		})
	case *models.UpdateRequest:
		return v.Validate(ctx, *value, fields...)

	case models.DeleteRequest:
		return v.validateFields(fields, map[string]string{
			FieldQRCodeID: value.QRCodeID,
			FieldUserID:   value.UserID,
		})
	case *models.DeleteRequest:
		return v.Validate(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *QRCodeValidator) validateFields(fields []string, values map[string]string) error {
	if len(fields) == 0 {
		// fixed order keeps error messages stable
		for _, f := range []string{FieldQRCodeID, FieldUserID, FieldData} {
			if _, ok := values[f]; ok {
				fields = append(fields, f)
			}
		}
	}

	for _, field := range fields {
		value, ok := values[field]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err := validateField(field, value); err != nil {
			return err
		}
	}

	return nil
}

func validateField(field, value string) error {
	blank := strings.TrimSpace(value) == ""

	switch field {
	case FieldUserID:
		if blank {
			return ErrEmptyUserID
		}
	case FieldData:
		if blank {
			return ErrEmptyData
		}
		if len(value) > MaxDataLength {
			return ErrDataTooLong
		}
	case FieldQRCodeID:
		if blank {
			return ErrEmptyQRCodeID
		}
	}

	return nil
}
