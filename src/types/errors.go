package types

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	INVALID_DATE_FORMAT ErrorCode = "INVALID_DATE_FORMAT"
	INVALID_DATE_RANGE  ErrorCode = "INVALID_DATE_RANGE"
	INVALID_STATUS      ErrorCode = "INVALID_STATUS"
	INVALID_SEQUENCE    ErrorCode = "INVALID_SEQUENCE"
	INVALID_LEVEL       ErrorCode = "INVALID_LEVEL"
	INVALID_REASON      ErrorCode = "INVALID_REASON"
	TRF_NOT_FOUND       ErrorCode = "TRF_NOT_FOUND"
	NO_FLIGHTS          ErrorCode = "NO_FLIGHTS"
	NO_HOTELS           ErrorCode = "NO_HOTELS"
	NO_ROOMS            ErrorCode = "NO_ROOMS"
	SYSTEM_ERROR        ErrorCode = "SYSTEM_ERROR"
)

// AppError carries a machine-readable code alongside the human-readable
// message. Every failure the engine reports to a caller is one of these.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, e.Err.Error())
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code ErrorCode, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapSystemError folds an unexpected storage or runtime failure into the
// SYSTEM_ERROR bucket, keeping the cause on the chain for logs.
func WrapSystemError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Code: SYSTEM_ERROR, Message: "unexpected error while processing request", Err: err}
}

// CodeOf extracts the error code, defaulting to SYSTEM_ERROR for plain
// errors that escaped without classification.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return SYSTEM_ERROR
}
