package models

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	UserID string `json:"userId"`
	Data   string `json:"data"`
}

// UpdateRequest is the body of PUT /api/qr/{qrCodeId}.
// QRCodeID is taken from the path, never from the body.
type UpdateRequest struct {
	QRCodeID string `json:"-"`
	UserID   string `json:"userId"`
	Data     string `json:"data"`
}

// DeleteRequest identifies the mapping to delete and the caller claiming it.
// UserID may arrive in the JSON body or as the userId query parameter.
type DeleteRequest struct {
	QRCodeID string `json:"-"`
	UserID   string `json:"userId"`
}
