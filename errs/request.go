package errs

import (
	"errors"
	"net/http"
)

// Authentication errors. All of them surface to the client as a uniform
// 401 Unauthorized; the distinct sentinels exist so logs can tell a missing
// header from a token that failed verification.
var (
	ErrMissingToken = errors.New("missing access token")
	ErrInvalidToken = errors.New("invalid access token")
)

func NewMissingTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrUnauthorized,
		Cause:      ErrMissingToken,
	}
}

func NewInvalidTokenError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrUnauthorized,
		Cause:      errors.Join(ErrInvalidToken, cause),
	}
}

func IsMissingTokenError(err error) bool {
	return errors.Is(err, ErrMissingToken)
}

func IsInvalidTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}
