package qrcode

import "errors"

var (
	ErrEmptyPayload   = errors.New("empty payload cannot be encoded")
	ErrEncodingQRCode = errors.New("error encoding qr code")
	ErrInvalidDataURL = errors.New("invalid png data url")
)
