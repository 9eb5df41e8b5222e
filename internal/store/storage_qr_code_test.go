// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qr-redirect/internal/logger"
	"github.com/MKhiriev/go-qr-redirect/internal/mock"
	"github.com/MKhiriev/go-qr-redirect/internal/qrcode"
	"github.com/MKhiriev/go-qr-redirect/internal/store"
	"github.com/MKhiriev/go-qr-redirect/models"
)

func newTestQRCodeStorage(t *testing.T) (store.QRCodeStorage, *mock.MockQRCodeRepository, *mock.MockImageArchive) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mock.NewMockQRCodeRepository(ctrl)
	archive := mock.NewMockImageArchive(ctrl)

	return store.NewQRCodeStorage(repo, archive, logger.Nop()), repo, archive
}

func renderedQRCode(t *testing.T) models.QRCode {
	t.Helper()

	image, err := qrcode.NewRenderer().Render("http://localhost:8080/api/qr/abcd1234")
	require.NoError(t, err)

	return models.QRCode{
		QRCodeID:    "abcd1234",
		UserID:      "u1",
		Data:        "https://example.com",
		QRCodeImage: image,
		QRData:      "http://localhost:8080/api/qr/abcd1234",
	}
}

func TestQRCodeStorage_Save_ArchivesImage(t *testing.T) {
	s, repo, archive := newTestQRCodeStorage(t)
	ctx := context.Background()
	qr := renderedQRCode(t)
	png, err := qrcode.DecodeDataURL(qr.QRCodeImage)
	require.NoError(t, err)

	repo.EXPECT().Create(ctx, qr).Return(qr, nil)
	archive.EXPECT().Put(ctx, "abcd1234", png).Return(nil)

	saved, err := s.Save(ctx, qr)

	require.NoError(t, err)
	assert.Equal(t, qr, saved)
}

func TestQRCodeStorage_Save_ArchiveFailureIsIgnored(t *testing.T) {
	s, repo, archive := newTestQRCodeStorage(t)
	ctx := context.Background()
	qr := renderedQRCode(t)

	repo.EXPECT().Create(ctx, qr).Return(qr, nil)
	archive.EXPECT().Put(ctx, "abcd1234", gomock.Any()).Return(store.ErrArchivingImage)

	_, err := s.Save(ctx, qr)

	assert.NoError(t, err)
}

func TestQRCodeStorage_Save_RepositoryError(t *testing.T) {
	s, repo, _ := newTestQRCodeStorage(t)
	ctx := context.Background()
	qr := renderedQRCode(t)

	repo.EXPECT().Create(ctx, qr).Return(models.QRCode{}, store.ErrQRCodeIDAlreadyExists)

	_, err := s.Save(ctx, qr)

	assert.ErrorIs(t, err, store.ErrQRCodeIDAlreadyExists)
}

func TestQRCodeStorage_Save_SkipsNonPNGImage(t *testing.T) {
	s, repo, _ := newTestQRCodeStorage(t)
	ctx := context.Background()
	qr := renderedQRCode(t)
	qr.QRCodeImage = "not-a-data-url"

	repo.EXPECT().Create(ctx, qr).Return(qr, nil)

	_, err := s.Save(ctx, qr)

	assert.NoError(t, err)
}

func TestQRCodeStorage_Update(t *testing.T) {
	s, repo, archive := newTestQRCodeStorage(t)
	ctx := context.Background()
	qr := renderedQRCode(t)

	repo.EXPECT().Update(ctx, qr).Return(qr, nil)
	archive.EXPECT().Put(ctx, "abcd1234", gomock.Any()).Return(nil)

	_, err := s.Update(ctx, qr)
	require.NoError(t, err)

	repo.EXPECT().Update(ctx, qr).Return(models.QRCode{}, store.ErrQRCodeNotFound)

	_, err = s.Update(ctx, qr)
	assert.ErrorIs(t, err, store.ErrQRCodeNotFound)
}

func TestQRCodeStorage_Delete(t *testing.T) {
	s, repo, archive := newTestQRCodeStorage(t)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, "abcd1234").Return(nil)
	archive.EXPECT().Remove(ctx, "abcd1234").Return(errors.New("object store down"))

	assert.NoError(t, s.Delete(ctx, "abcd1234"))

	repo.EXPECT().Delete(ctx, "missing0").Return(store.ErrQRCodeNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "missing0"), store.ErrQRCodeNotFound)
}

func TestQRCodeStorage_ReadsPassThrough(t *testing.T) {
	s, repo, _ := newTestQRCodeStorage(t)
	ctx := context.Background()
	qr := renderedQRCode(t)

	repo.EXPECT().GetByID(ctx, "abcd1234").Return(qr, nil)
	repo.EXPECT().ListByUser(ctx, "u1").Return([]models.QRCode{qr}, nil)

	got, err := s.Get(ctx, "abcd1234")
	require.NoError(t, err)
	assert.Equal(t, qr, got)

	list, err := s.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestNewQRCodeStorage_NilArchive(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockQRCodeRepository(ctrl)
	s := store.NewQRCodeStorage(repo, nil, logger.Nop())
	qr := renderedQRCode(t)

	repo.EXPECT().Create(gomock.Any(), qr).Return(qr, nil)

	_, err := s.Save(context.Background(), qr)
	assert.NoError(t, err)
}
