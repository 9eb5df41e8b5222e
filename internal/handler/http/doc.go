// Package http implements the HTTP transport layer of the QR redirect service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, CORS and response compression are
// applied here before requests are delegated to the service layer.
package http
