// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	baseURL, err := url.Parse(cfg.App.BaseURL)
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return fmt.Errorf("%w: base url %q must be an absolute URL", ErrInvalidAppConfigs, cfg.App.BaseURL)
	}

	if cfg.App.IDMaxAttempts < 1 {
		return fmt.Errorf("%w: id max attempts must be positive", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Images.Endpoint != "" && cfg.Storage.Images.Bucket == "" {
		return fmt.Errorf("%w: image archive bucket is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *StructuredConfig) validateClient() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
