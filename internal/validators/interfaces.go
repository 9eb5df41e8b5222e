// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming QR code requests before they reach
// the service layer.
//
// A [Validator] is injected into a service wrapper; callers may restrict
// validation to named fields, e.g. only the qrCodeId path segment.
package validators

import "context"

// Validator validates arbitrary request values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
