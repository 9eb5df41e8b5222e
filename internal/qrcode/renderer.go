// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package qrcode renders QR images as embeddable PNG data URLs.
package qrcode

import (
	"encoding/base64"
	"fmt"
	"strings"

	goqrcode "github.com/skip2/go-qrcode"
)

const (
	// DataURLPrefix precedes the base64 PNG payload in every rendered image.
	DataURLPrefix = "data:image/png;base64,"

	// DefaultSize is the edge length of rendered images in pixels.
	DefaultSize = 256
)

// Renderer encodes strings as QR codes.
type Renderer struct {
	level goqrcode.RecoveryLevel
	size  int
}

// NewRenderer returns a Renderer with medium error correction and
// [DefaultSize] images.
func NewRenderer() *Renderer {
	return &Renderer{
		level: goqrcode.Medium,
		size:  DefaultSize,
	}
}

// Render encodes content and returns "data:image/png;base64,<png>".
func (r *Renderer) Render(content string) (string, error) {
	png, err := r.PNG(content)
	if err != nil {
		return "", err
	}

	return DataURLPrefix + base64.StdEncoding.EncodeToString(png), nil
}

// PNG encodes content and returns the raw image bytes.
func (r *Renderer) PNG(content string) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyPayload
	}

	png, err := goqrcode.Encode(content, r.level, r.size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingQRCode, err)
	}

	return png, nil
}

// DecodeDataURL extracts PNG bytes from a value produced by [Renderer.Render].
func DecodeDataURL(dataURL string) ([]byte, error) {
	payload, ok := strings.CutPrefix(dataURL, DataURLPrefix)
	if !ok {
		return nil, ErrInvalidDataURL
	}

	png, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}

	return png, nil
}
