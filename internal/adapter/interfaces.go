// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the QR redirect REST API.
//
// [QRCodeAdapter] decouples the command-line client from the transport. The
// package ships an HTTP/REST implementation ([NewHTTPQRCodeAdapter]) built on
// resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-qr-redirect/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// QRCodeAdapter talks to a running QR redirect server.
type QRCodeAdapter interface {
	// Generate creates a new mapping via POST /api/generate.
	Generate(ctx context.Context, req models.GenerateRequest) (models.QRCodeView, error)

	// List returns every mapping of userID.
	List(ctx context.Context, userID string) ([]models.QRCode, error)

	// Update replaces the redirect target of req.QRCodeID.
	Update(ctx context.Context, req models.UpdateRequest) (models.QRCodeView, error)

	// Delete removes req.QRCodeID on behalf of req.UserID.
	Delete(ctx context.Context, req models.DeleteRequest) error

	// Resolve returns the Location the server redirects qrCodeID to,
	// without following it.
	Resolve(ctx context.Context, qrCodeID string) (string, error)

	// Image downloads the PNG of qrCodeID.
	Image(ctx context.Context, qrCodeID string) ([]byte, error)

	// Version returns the server's reported version.
	Version(ctx context.Context) (string, error)
}
