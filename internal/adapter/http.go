package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-qr-redirect/internal/config"
	"github.com/MKhiriev/go-qr-redirect/internal/logger"
	"github.com/MKhiriev/go-qr-redirect/internal/utils"
	"github.com/MKhiriev/go-qr-redirect/models"
)

type httpQRCodeAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPQRCodeAdapter constructs an HTTP/REST implementation of
// [QRCodeAdapter]. adapterCfg.HTTPAddress may omit the scheme, in which case
// http is assumed. Redirects are never followed so Resolve can report them.
func NewHTTPQRCodeAdapter(adapterCfg config.Adapter, logger *logger.Logger) (QRCodeAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &httpQRCodeAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpQRCodeAdapter) Generate(ctx context.Context, req models.GenerateRequest) (models.QRCodeView, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/generate")
	if err != nil {
		return models.QRCodeView{}, fmt.Errorf("generate request: %w", err)
	}

	return decodeQRCodeResponse(resp)
}

func (h *httpQRCodeAdapter) List(ctx context.Context, userID string) ([]models.QRCode, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("userId", userID).
		Get("/api/user/{userId}/qrcodes")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var qrCodes []models.QRCode
	if err = json.Unmarshal(resp.Body(), &qrCodes); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}

	return qrCodes, nil
}

func (h *httpQRCodeAdapter) Update(ctx context.Context, req models.UpdateRequest) (models.QRCodeView, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("qrCodeId", req.QRCodeID).
		SetBody(req).
		Put("/api/qr/{qrCodeId}")
	if err != nil {
		return models.QRCodeView{}, fmt.Errorf("update request: %w", err)
	}

	return decodeQRCodeResponse(resp)
}

func (h *httpQRCodeAdapter) Delete(ctx context.Context, req models.DeleteRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("qrCodeId", req.QRCodeID).
		SetBody(req).
		Delete("/api/qr/{qrCodeId}")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpQRCodeAdapter) Resolve(ctx context.Context, qrCodeID string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("qrCodeId", qrCodeID).
		Get("/api/qr/{qrCodeId}")
	if err != nil {
		return "", fmt.Errorf("resolve request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return resp.Header().Get("Location"), nil
	}

	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return "", fmt.Errorf("%w: http %d without redirect", ErrUnexpectedResponse, resp.StatusCode())
}

func (h *httpQRCodeAdapter) Image(ctx context.Context, qrCodeID string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "image/png").
		SetPathParam("qrCodeId", qrCodeID).
		Get("/api/qr/{qrCodeId}/image")
	if err != nil {
		return nil, fmt.Errorf("image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpQRCodeAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func decodeQRCodeResponse(resp *resty.Response) (models.QRCodeView, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.QRCodeView{}, err
	}

	var qrResp models.QRCodeResponse
	if err := json.Unmarshal(resp.Body(), &qrResp); err != nil {
		return models.QRCodeView{}, fmt.Errorf("decode qr code response: %w", err)
	}

	return qrResp.QRCode, nil
}
