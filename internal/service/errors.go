package service

import (
	"errors"

	"github.com/MKhiriev/go-qr-redirect/internal/qrcode"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUnauthorizedAccessToDifferentUserData = errors.New("unauthorized access to different user data")

	// ErrIdentifierCollision is returned by Create when every generated
	// identifier was already taken.
	ErrIdentifierCollision = errors.New("could not generate a unique qr code id")

	ErrEmptyPayload = qrcode.ErrEmptyPayload

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
