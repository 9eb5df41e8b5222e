// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the QR redirect
// service.
//
// Each subcommand maps onto one REST call made through
// [adapter.QRCodeAdapter]; results are printed as indented JSON.
package client
