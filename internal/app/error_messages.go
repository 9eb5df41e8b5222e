// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// QR redirect server handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place keeps the API wording consistent.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a request fails validation
	// (e.g. empty userId or data).
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgQRCodeNotFound is returned when no mapping exists for the requested
	// qrCodeId.
	MsgQRCodeNotFound = "QR Code not found"

	// MsgUnauthorized is returned when the caller's userId does not own the
	// mapping.
	MsgUnauthorized = "Unauthorized"

	MsgQRCodeCreated = "QR Code created"
	MsgQRCodeUpdated = "QR Code updated"
	MsgQRCodeDeleted = "QR Code deleted successfully"

	MsgGenerateFailed = "Failed to generate QR code"
	MsgFetchFailed    = "Failed to fetch QR codes"
	MsgUpdateFailed   = "Failed to update QR code"
	MsgDeleteFailed   = "Failed to delete QR code"
	MsgRedirectFailed = "Failed to redirect to the original link"
	MsgImageFailed    = "Failed to load QR code image"

	// MsgAPIRunning is the liveness text served on GET /.
	MsgAPIRunning = "API is running..."
)
