package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qr-redirect/internal/mock"
	"github.com/MKhiriev/go-qr-redirect/internal/validators"
	"github.com/MKhiriev/go-qr-redirect/models"
)

func newValidatedService(t *testing.T) (QRCodeService, *mock.MockQRCodeService) {
	t.Helper()

	inner := mock.NewMockQRCodeService(gomock.NewController(t))
	return NewQRCodeValidationService().Wrap(inner), inner
}

func TestQRCodeValidationService_Create(t *testing.T) {
	t.Run("rejects empty user id", func(t *testing.T) {
		svc, _ := newValidatedService(t)

		_, err := svc.Create(context.Background(), models.GenerateRequest{Data: testTarget})

		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrEmptyUserID)
	})

	t.Run("rejects blank data", func(t *testing.T) {
		svc, _ := newValidatedService(t)

		_, err := svc.Create(context.Background(), models.GenerateRequest{UserID: testUserID, Data: "   "})

		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrEmptyData)
	})

	t.Run("passes valid request through", func(t *testing.T) {
		svc, inner := newValidatedService(t)
		req := models.GenerateRequest{UserID: testUserID, Data: testTarget}
		want := models.QRCodeView{QRCodeID: testQRCodeID, Data: testTarget}
		inner.EXPECT().Create(gomock.Any(), req).Return(want, nil)

		got, err := svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestQRCodeValidationService_Update(t *testing.T) {
	t.Run("rejects missing qr code id", func(t *testing.T) {
		svc, _ := newValidatedService(t)

		_, err := svc.Update(context.Background(), models.UpdateRequest{UserID: testUserID, Data: testTarget})

		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrEmptyQRCodeID)
	})

	t.Run("passes valid request through", func(t *testing.T) {
		svc, inner := newValidatedService(t)
		req := models.UpdateRequest{QRCodeID: testQRCodeID, UserID: testUserID, Data: testTarget}
		inner.EXPECT().Update(gomock.Any(), req).Return(models.QRCodeView{QRCodeID: testQRCodeID}, nil)

		got, err := svc.Update(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, testQRCodeID, got.QRCodeID)
	})
}

func TestQRCodeValidationService_Delete(t *testing.T) {
	t.Run("rejects empty user id", func(t *testing.T) {
		svc, _ := newValidatedService(t)

		err := svc.Delete(context.Background(), models.DeleteRequest{QRCodeID: testQRCodeID})

		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("passes valid request through", func(t *testing.T) {
		svc, inner := newValidatedService(t)
		req := models.DeleteRequest{QRCodeID: testQRCodeID, UserID: testUserID}
		inner.EXPECT().Delete(gomock.Any(), req).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), req))
	})
}

func TestQRCodeValidationService_List_IsNotValidated(t *testing.T) {
	svc, inner := newValidatedService(t)
	inner.EXPECT().List(gomock.Any(), "").Return([]models.QRCode{}, nil)

	got, err := svc.List(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, got)
}
