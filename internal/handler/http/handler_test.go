package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qr-redirect/internal/config"
	"github.com/MKhiriev/go-qr-redirect/internal/logger"
	"github.com/MKhiriev/go-qr-redirect/internal/mock"
	"github.com/MKhiriev/go-qr-redirect/internal/service"
	"github.com/MKhiriev/go-qr-redirect/internal/store"
	"github.com/MKhiriev/go-qr-redirect/models"
)

const (
	testQRCodeID = "0a1b2c3d"
	testUserID   = "u1"
	testTarget   = "https://example.com"
)

type testServices struct {
	qrCodes  *mock.MockQRCodeService
	redirect *mock.MockRedirectService
	appInfo  *mock.MockAppInfoService
}

func newTestRouter(t *testing.T) (*chi.Mux, testServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := testServices{
		qrCodes:  mock.NewMockQRCodeService(ctrl),
		redirect: mock.NewMockRedirectService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		QRCodeService:   mocks.qrCodes,
		RedirectService: mocks.redirect,
		AppInfoService:  mocks.appInfo,
	}
	h := NewHandler(services, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())

	return h.Init(), mocks
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func testView() models.QRCodeView {
	return models.QRCodeView{
		QRCodeID:    testQRCodeID,
		QRCodeImage: "data:image/png;base64,iVBORw0KGgo=",
		Data:        testTarget,
		QRCodeURL:   "http://localhost:8080/api/qr/" + testQRCodeID,
	}
}

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	h := NewHandler(services, config.Server{RequestTimeout: time.Minute}, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Equal(t, time.Minute, h.requestTimeout)
}

// ─────────────────────────────────────────────
// POST /api/generate
// ─────────────────────────────────────────────

func TestGenerate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		prepare    func(m testServices)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: `{"userId":"u1","data":"https://example.com"}`,
			prepare: func(m testServices) {
				m.qrCodes.EXPECT().
					Create(gomock.Any(), models.GenerateRequest{UserID: testUserID, Data: testTarget}).
					Return(testView(), nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"success":true,"message":"QR Code created","qrCode":{` +
				`"qrCodeId":"0a1b2c3d","qrCodeImage":"data:image/png;base64,iVBORw0KGgo=",` +
				`"data":"https://example.com","qrCodeUrl":"http://localhost:8080/api/qr/0a1b2c3d"}}`,
		},
		{
			name:       "malformed json",
			body:       `{"userId":`,
			prepare:    func(m testServices) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid JSON was passed"}`,
		},
		{
			name: "invalid data",
			body: `{"userId":"","data":"https://example.com"}`,
			prepare: func(m testServices) {
				m.qrCodes.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(models.QRCodeView{}, fmt.Errorf("%w: empty user id", service.ErrInvalidDataProvided))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid data provided"}`,
		},
		{
			name: "store failure",
			body: `{"userId":"u1","data":"https://example.com"}`,
			prepare: func(m testServices) {
				m.qrCodes.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(models.QRCodeView{}, fmt.Errorf("error creating qr code: %w", store.ErrExecutingStatement))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to generate QR code"}`,
		},
		{
			name: "identifier collision",
			body: `{"userId":"u1","data":"https://example.com"}`,
			prepare: func(m testServices) {
				m.qrCodes.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(models.QRCodeView{}, service.ErrIdentifierCollision)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to generate QR code"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			tt.prepare(mocks)

			rec := serve(router, http.MethodPost, "/api/generate", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

// ─────────────────────────────────────────────
// GET /api/user/{userId}/qrcodes
// ─────────────────────────────────────────────

func TestListByUser(t *testing.T) {
	t.Run("returns the user's codes", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		qrCode := models.QRCode{
			UserID:      testUserID,
			Data:        testTarget,
			QRCodeID:    testQRCodeID,
			QRCodeImage: "img",
			QRData:      "http://localhost:8080/api/qr/" + testQRCodeID,
		}
		mocks.qrCodes.EXPECT().List(gomock.Any(), testUserID).Return([]models.QRCode{qrCode}, nil)

		rec := serve(router, http.MethodGet, "/api/user/u1/qrcodes", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got []models.QRCode
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, []models.QRCode{qrCode}, got)
	})

	t.Run("empty list is an empty array", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.qrCodes.EXPECT().List(gomock.Any(), "nobody").Return([]models.QRCode{}, nil)

		rec := serve(router, http.MethodGet, "/api/user/nobody/qrcodes", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.qrCodes.EXPECT().List(gomock.Any(), testUserID).Return(nil, store.ErrExecutingQuery)

		rec := serve(router, http.MethodGet, "/api/user/u1/qrcodes", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Failed to fetch QR codes"}`, rec.Body.String())
	})
}

// ─────────────────────────────────────────────
// PUT /api/qr/{qrCodeId}
// ─────────────────────────────────────────────

func TestUpdate(t *testing.T) {
	wantReq := models.UpdateRequest{QRCodeID: testQRCodeID, UserID: testUserID, Data: testTarget}

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "updated",
			body:       `{"userId":"u1","data":"https://example.com"}`,
			wantStatus: http.StatusOK,
			wantBody: `{"success":true,"message":"QR Code updated","qrCode":{` +
				`"qrCodeId":"0a1b2c3d","qrCodeImage":"data:image/png;base64,iVBORw0KGgo=",` +
				`"data":"https://example.com","qrCodeUrl":"http://localhost:8080/api/qr/0a1b2c3d"}}`,
		},
		{
			name:       "not found",
			body:       `{"userId":"u1","data":"https://example.com"}`,
			err:        fmt.Errorf("error getting qr code: %w", store.ErrQRCodeNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"QR Code not found"}`,
		},
		{
			name:       "different owner",
			body:       `{"userId":"u1","data":"https://example.com"}`,
			err:        service.ErrUnauthorizedAccessToDifferentUserData,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"message":"Unauthorized"}`,
		},
		{
			name:       "unexpected failure",
			body:       `{"userId":"u1","data":"https://example.com"}`,
			err:        errors.New("disk full"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to update QR code"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			mocks.qrCodes.EXPECT().Update(gomock.Any(), wantReq).Return(testView(), tt.err)

			rec := serve(router, http.MethodPut, "/api/qr/"+testQRCodeID, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestUpdate_PathIDOverridesBody(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.qrCodes.EXPECT().
		Update(gomock.Any(), models.UpdateRequest{QRCodeID: testQRCodeID, UserID: testUserID, Data: testTarget}).
		Return(testView(), nil)

	rec := serve(router, http.MethodPut, "/api/qr/"+testQRCodeID,
		`{"qrCodeId":"ffffffff","userId":"u1","data":"https://example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdate_MalformedJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodPut, "/api/qr/"+testQRCodeID, `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// DELETE /api/qr/{qrCodeId}
// ─────────────────────────────────────────────

func TestDelete(t *testing.T) {
	wantReq := models.DeleteRequest{QRCodeID: testQRCodeID, UserID: testUserID}

	tests := []struct {
		name       string
		target     string
		body       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "user id in body",
			target:     "/api/qr/" + testQRCodeID,
			body:       `{"userId":"u1"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"QR Code deleted successfully"}`,
		},
		{
			name:       "user id in query",
			target:     "/api/qr/" + testQRCodeID + "?userId=u1",
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"QR Code deleted successfully"}`,
		},
		{
			name:       "not found",
			target:     "/api/qr/" + testQRCodeID + "?userId=u1",
			err:        store.ErrQRCodeNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"QR Code not found"}`,
		},
		{
			name:       "different owner",
			target:     "/api/qr/" + testQRCodeID,
			body:       `{"userId":"u1"}`,
			err:        service.ErrUnauthorizedAccessToDifferentUserData,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"message":"Unauthorized"}`,
		},
		{
			name:       "store failure",
			target:     "/api/qr/" + testQRCodeID + "?userId=u1",
			err:        store.ErrExecutingStatement,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to delete QR code"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			mocks.qrCodes.EXPECT().Delete(gomock.Any(), wantReq).Return(tt.err)

			rec := serve(router, http.MethodDelete, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestDelete_MissingUserIDIsPassedOnForValidation(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.qrCodes.EXPECT().
		Delete(gomock.Any(), models.DeleteRequest{QRCodeID: testQRCodeID}).
		Return(fmt.Errorf("%w: empty user id", service.ErrInvalidDataProvided))

	rec := serve(router, http.MethodDelete, "/api/qr/"+testQRCodeID, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid data provided"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// GET /api/qr/{qrCodeId} and /image
// ─────────────────────────────────────────────

func TestRedirect(t *testing.T) {
	t.Run("moved permanently to stored data", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.redirect.EXPECT().Resolve(gomock.Any(), testQRCodeID).Return("https://example.com/a?b=c", nil)

		rec := serve(router, http.MethodGet, "/api/qr/"+testQRCodeID, "")

		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "https://example.com/a?b=c", rec.Header().Get("Location"))
	})

	t.Run("unknown id", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.redirect.EXPECT().Resolve(gomock.Any(), "ffffffff").
			Return("", fmt.Errorf("error resolving qr code: %w", store.ErrQRCodeNotFound))

		rec := serve(router, http.MethodGet, "/api/qr/ffffffff", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "QR Code not found", strings.TrimSpace(rec.Body.String()))
		assert.Empty(t, rec.Header().Get("Location"))
	})

	t.Run("store failure", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.redirect.EXPECT().Resolve(gomock.Any(), testQRCodeID).Return("", store.ErrScanningRow)

		rec := serve(router, http.MethodGet, "/api/qr/"+testQRCodeID, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to redirect to the original link", strings.TrimSpace(rec.Body.String()))
	})
}

func TestImage(t *testing.T) {
	t.Run("serves png", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		png := []byte("\x89PNG\r\n\x1a\n")
		mocks.redirect.EXPECT().Image(gomock.Any(), testQRCodeID).Return(png, nil)

		rec := serve(router, http.MethodGet, "/api/qr/"+testQRCodeID+"/image", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("unknown id", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.redirect.EXPECT().Image(gomock.Any(), testQRCodeID).Return(nil, store.ErrQRCodeNotFound)

		rec := serve(router, http.MethodGet, "/api/qr/"+testQRCodeID+"/image", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("corrupt image", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.redirect.EXPECT().Image(gomock.Any(), testQRCodeID).Return(nil, errors.New("bad data url"))

		rec := serve(router, http.MethodGet, "/api/qr/"+testQRCodeID+"/image", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

// ─────────────────────────────────────────────
// GET / and /api/version
// ─────────────────────────────────────────────

func TestAPIStatus(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "API is running...", rec.Body.String())
}

func TestGetServerVersion(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := serve(router, http.MethodGet, "/api/version", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("wrapped: %w", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{service.ErrUnauthorizedAccessToDifferentUserData, http.StatusForbidden},
		{fmt.Errorf("a: %w", fmt.Errorf("b: %w", store.ErrQRCodeNotFound)), http.StatusNotFound},
		{store.ErrExecutingQuery, http.StatusInternalServerError},
		{errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
