package errs

import (
	"errors"
	"net/http"
)

// Sentinel values for the error taxonomy. The messages double as the
// client-facing strings, so they are spelled exactly as the API returns them.
var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrBlogNotFound       = errors.New("Blog not found")
	ErrInvalidData        = errors.New("Invalid data")
	ErrInternal           = errors.New("Internal server error")
	ErrUnauthorized       = errors.New("Unauthorized")
)

type ApiErr struct {
	StatusCode int
	err        error
	Cause      error // underlying fault, logged but never sent to the client
}

func NewApiErr(statusCode int, message string) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		err:        errors.New(message),
	}
}

// implements error interface. this allows us to pass an instance of ApiErr
// as an argument of type `error`
func (e *ApiErr) Error() string {
	return e.err.Error()
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
// The cause is included so log-side checks can match it too.
func (e *ApiErr) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.err, e.Cause}
	}
	return []error{e.err}
}

func NewInvalidCredentialsError() *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrInvalidCredentials}
}

func NewBlogNotFoundError() *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: ErrBlogNotFound}
}

func NewInvalidDataError() *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: ErrInvalidData}
}

func NewInternalError(cause error) *ApiErr {
	return &ApiErr{StatusCode: http.StatusInternalServerError, err: ErrInternal, Cause: cause}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrBlogNotFound)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrInvalidCredentials)
}

func IsInvalidData(err error) bool {
	return errors.Is(err, ErrInvalidData)
}
