// Package server runs the HTTP transport of the QR redirect service.
//
// It owns the server lifecycle: startup, signal handling, and graceful
// shutdown bounded by a timeout.
package server
