package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qr-redirect/internal/logger"
	"github.com/MKhiriev/go-qr-redirect/internal/utils"
)

// ─────────────────────────────────────────────
// withTraceID
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantReuse bool
	}{
		{name: "reuses request header", header: "my-trace-id", wantReuse: true},
		{name: "generates when absent", header: ""},
		{name: "replaces oversized header", header: strings.Repeat("x", maxTraceIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop(), traceIDs: utils.NewUUIDGenerator()}
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(traceIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			require.True(t, called)
			got := rec.Header().Get(traceIDHeader)
			if tt.wantReuse {
				assert.Equal(t, tt.header, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}, traceIDs: utils.NewUUIDGenerator()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "abc")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["trace_id"])
}

// ─────────────────────────────────────────────
// withLogging
// ─────────────────────────────────────────────

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus float64
		wantSize   float64
		wantLevel  string
	}{
		{
			name: "explicit status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusMovedPermanently)
			},
			wantStatus: http.StatusMovedPermanently,
			wantLevel:  "info",
		},
		{
			name: "implicit ok with body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("hello"))
			},
			wantStatus: http.StatusOK,
			wantSize:   5,
			wantLevel:  "info",
		},
		{
			name:       "nothing written",
			handler:    func(w http.ResponseWriter, r *http.Request) {},
			wantStatus: http.StatusOK,
			wantLevel:  "info",
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "fail", http.StatusInternalServerError)
			},
			wantStatus: http.StatusInternalServerError,
			wantSize:   5,
			wantLevel:  "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)
			h := &Handler{logger: logger.Nop()}

			req := httptest.NewRequest(http.MethodGet, "/api/qr/abc", nil)
			req = req.WithContext(l.WithContext(req.Context()))
			h.withLogging(tt.handler).ServeHTTP(httptest.NewRecorder(), req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "/api/qr/abc", entry["uri"])
			assert.Equal(t, http.MethodGet, entry["method"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestWithLogging_RecordsRoutePattern(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	h := &Handler{logger: logger.Nop()}

	router := chi.NewRouter()
	router.Use(h.withLogging)
	router.Get("/api/qr/{qrCodeId}", func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/qr/abc", nil)
	req = req.WithContext(l.WithContext(req.Context()))
	router.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/api/qr/{qrCodeId}", entry["route"])
}

// ─────────────────────────────────────────────
// responseWriter
// ─────────────────────────────────────────────

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotFound, rw.status)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseWriter_AccumulatesSize(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.Write([]byte("abc"))
	rw.Write([]byte("de"))

	assert.Equal(t, http.StatusOK, rw.status)
	assert.Equal(t, 5, rw.size)
	assert.Equal(t, "abcde", rec.Body.String())
	assert.Same(t, rec, rw.Unwrap())
}

// ─────────────────────────────────────────────
// CheckHTTPMethod
// ─────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Delete("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method string
		want   int
	}{
		{http.MethodGet, http.StatusOK},
		{http.MethodDelete, http.StatusNoContent},
		{http.MethodPost, http.StatusNotFound},
		{http.MethodPut, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, "/items/42", nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
