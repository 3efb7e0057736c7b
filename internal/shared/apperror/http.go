package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the transport-level view of an error, ready to be serialized
// by the response package.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP translates any error into an HTTPError. AppErrors keep their code,
// status and message; everything else collapses into a generic 500 so internal
// details never leak to clients.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "An unexpected error occurred",
	}
}
