package apierr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	govalidator "github.com/go-playground/validator/v10"

	"github.com/tuanvumaihuynh/korpstock/internal/apperr"
	"github.com/tuanvumaihuynh/korpstock/internal/http/gen"
	"github.com/tuanvumaihuynh/korpstock/pkg/validator"
	"github.com/tuanvumaihuynh/korpstock/pkg/zerror"
)

// ErrorResponse is the error response for the API.
type ErrorResponse struct {
	gen.ErrorResponse

	// StatusCode is the status code for the error response.
	StatusCode int `json:"-"`
}

func New(err error) ErrorResponse {
	return errorToErrorResponse(err)
}

var InternalServerErr = ErrorResponse{
	ErrorResponse: gen.ErrorResponse{
		Code:    "internalServerError",
		Message: "an unknown error occurred",
	},
	StatusCode: http.StatusInternalServerError,
}

func errorToErrorResponse(err error) ErrorResponse {
	var zErr zerror.ZError
	if errors.As(err, &zErr) {
		return ErrorResponse{
			ErrorResponse: gen.ErrorResponse{
				Code:    zErr.Code(),
				Message: zErr.Msg(),
				Details: fieldErrors(zErr.Parent()),
			},
			StatusCode: ZErrorStatusToHTTPStatus(zErr.Status()),
		}
	}

	if details := fieldErrors(err); details != nil {
		return ErrorResponse{
			ErrorResponse: gen.ErrorResponse{
				Code:    apperr.ValidationErrorCode,
				Message: "validation error",
				Details: details,
			},
			StatusCode: http.StatusBadRequest,
		}
	}

	if isOpenAPICodegenErr(err) {
		return ErrorResponse{
			ErrorResponse: gen.ErrorResponse{
				Code:    apperr.ValidationErrorCode,
				Message: err.Error(),
			},
			StatusCode: http.StatusBadRequest,
		}
	}

	return InternalServerErr
}

// fieldErrors extracts per-field details from validator and OpenAPI request
// validation errors. It returns nil for any other error.
func fieldErrors(err error) *[]gen.FieldError {
	if err == nil {
		return nil
	}

	var validationErrs govalidator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]gen.FieldError, len(validationErrs))
		for i, fe := range validationErrs {
			details[i] = gen.FieldError{
				Field:   fe.Field(),
				Message: validator.ValidationErrorMessage(fe),
			}
		}
		return &details
	}

	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		return &[]gen.FieldError{requestFieldError(reqErr)}
	}

	return nil
}

func requestFieldError(reqErr *openapi3filter.RequestError) gen.FieldError {
	fe := gen.FieldError{
		Field:   "body",
		Message: reqErr.Reason,
	}
	if reqErr.Parameter != nil {
		fe.Field = reqErr.Parameter.Name
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr.Err, &schemaErr) {
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			fe.Field = strings.Join(pointer, ".")
		}
		fe.Message = schemaErr.Reason
	}

	if fe.Message == "" && reqErr.Err != nil {
		fe.Message = reqErr.Err.Error()
	}

	return fe
}

func ZErrorStatusToHTTPStatus(status zerror.Status) int {
	switch status {
	case zerror.StatusUnauthorized:
		return http.StatusUnauthorized
	case zerror.StatusForbidden:
		return http.StatusForbidden
	case zerror.StatusNotFound:
		return http.StatusNotFound
	case zerror.StatusUnprocessableEntity:
		return http.StatusUnprocessableEntity
	case zerror.StatusConflict:
		return http.StatusConflict
	case zerror.StatusTooManyRequests:
		return http.StatusTooManyRequests
	case zerror.StatusBadRequest:
		return http.StatusBadRequest
	case zerror.StatusValidationFailed:
		return http.StatusBadRequest
	case zerror.StatusUnknown, zerror.StatusInternalServerError:
		return http.StatusInternalServerError
	case zerror.StatusTimeout:
		return http.StatusGatewayTimeout
	case zerror.StatusNotImplemented:
		return http.StatusNotImplemented
	case zerror.StatusBadGateway:
		return http.StatusBadGateway
	case zerror.StatusServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func isOpenAPICodegenErr(err error) bool {
	var (
		e1 *gen.UnescapedCookieParamError
		e2 *gen.UnmarshalingParamError
		e3 *gen.RequiredParamError
		e4 *gen.RequiredHeaderError
		e5 *gen.InvalidParamFormatError
		e6 *gen.TooManyValuesForParamError
	)

	return errors.As(err, &e1) ||
		errors.As(err, &e2) ||
		errors.As(err, &e3) ||
		errors.As(err, &e4) ||
		errors.As(err, &e5) ||
		errors.As(err, &e6)
}
