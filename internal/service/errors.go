package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidToken is returned when a presented token key resolves to
	// no account.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenCreationFailed wraps failures while minting a new token key.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
