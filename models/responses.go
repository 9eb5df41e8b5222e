package models

// QRCodeView is the client-facing shape of a created or updated mapping.
type QRCodeView struct {
	QRCodeID    string `json:"qrCodeId"`
	QRCodeImage string `json:"qrCodeImage"`
	Data        string `json:"data"`
	QRCodeURL   string `json:"qrCodeUrl"`
}

// QRCodeResponse wraps a [QRCodeView] with a status message.
type QRCodeResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	QRCode  QRCodeView `json:"qrCode"`
}

// MessageResponse carries a human-readable outcome, used for delete
// acknowledgements and for 403/404 answers.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a generic failure description for 4xx/5xx answers.
type ErrorResponse struct {
	Error string `json:"error"`
}
