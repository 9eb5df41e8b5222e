package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-redirect/internal/validators"
	"github.com/MKhiriev/go-qr-redirect/models"
)

// QRCodeServiceWrapper defines middleware composition for QRCodeService.
// Implementations wrap an existing QRCodeService to add behavior such as
// validation.
type QRCodeServiceWrapper interface {
	Wrap(QRCodeService) QRCodeService
}

// QRCodeValidationService rejects malformed requests before they reach the
// wrapped [QRCodeService]. Validation failures wrap [ErrInvalidDataProvided].
type QRCodeValidationService struct {
	inner     QRCodeService
	validator validators.Validator
}

func NewQRCodeValidationService() QRCodeServiceWrapper {
	return &QRCodeValidationService{
		validator: validators.NewQRCodeValidator(),
	}
}

func (v *QRCodeValidationService) Create(ctx context.Context, req models.GenerateRequest) (models.QRCodeView, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.QRCodeView{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, req)
}

func (v *QRCodeValidationService) List(ctx context.Context, userID string) ([]models.QRCode, error) {
	return v.inner.List(ctx, userID)
}

func (v *QRCodeValidationService) Update(ctx context.Context, req models.UpdateRequest) (models.QRCodeView, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.QRCodeView{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, req)
}

func (v *QRCodeValidationService) Delete(ctx context.Context, req models.DeleteRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Delete(ctx, req)
}

func (v *QRCodeValidationService) Wrap(wrapper QRCodeService) QRCodeService {
	v.inner = wrapper
	return v
}
