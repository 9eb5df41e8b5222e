package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUserID   = errors.New("userId is required")
	ErrEmptyData     = errors.New("data is required")
	ErrEmptyQRCodeID = errors.New("qrCodeId is required")
	ErrDataTooLong   = errors.New("data is too long")
)
