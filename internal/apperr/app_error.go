package apperr

import "github.com/tuanvumaihuynh/korpstock/pkg/zerror"

const (
	ValidationErrorCode      = "VALIDATION_FAILED"
	ProductNotFoundErrorCode = "PRODUCT_NOT_FOUND"
)

var (
	ValidationErr      = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	ProductNotFoundErr = zerror.NewNotFound(ProductNotFoundErrorCode, "product not found")
)
