package apperror

import "net/http"

// AppError carries the status and client-facing message of a failure.
// Err is the underlying cause and is only logged.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// TooLarge is returned for uploads over the configured size limit.
func TooLarge(err error) *AppError {
	return New(http.StatusRequestEntityTooLarge, "File too large", err)
}

// Unprocessable reports input that was well formed but could not be used,
// such as a PDF without a text layer.
func Unprocessable(message string, err error) *AppError {
	return New(http.StatusUnprocessableEntity, message, err)
}

// Unavailable reports a dependency outage the client may retry.
func Unavailable(message string, err error) *AppError {
	return New(http.StatusServiceUnavailable, message, err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
