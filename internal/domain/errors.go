package domain

import "errors"

var (
	ErrMissingAccessToken = errors.New("credentials missing access token")
	ErrCredentialsExpired = errors.New("credentials expired")
)
