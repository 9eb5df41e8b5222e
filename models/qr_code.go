// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// QRCode is a single redirect mapping owned by a user.
// One row is created per generate call; the identifier never changes.
type QRCode struct {
	// UserID is the caller-supplied owner of the mapping.
	UserID string `json:"userId"`

	// Data is the redirect target. Scans of the code resolve here.
	Data string `json:"data"`

	// QRCodeID is the short globally unique identifier (8 hex chars).
	QRCodeID string `json:"qrCodeId"`

	// QRCodeImage is the rendered PNG as a base64 data URL.
	QRCodeImage string `json:"qrCodeImage"`

	// QRData is the redirect URL encoded into the image.
	QRData string `json:"qrData"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// TableName returns the name of the database table
// associated with the QRCode model.
func (q QRCode) TableName() string {
	return "qr_codes"
}

// View converts the stored mapping into its response representation.
func (q QRCode) View() QRCodeView {
	return QRCodeView{
		QRCodeID:    q.QRCodeID,
		QRCodeImage: q.QRCodeImage,
		Data:        q.Data,
		QRCodeURL:   q.QRData,
	}
}
