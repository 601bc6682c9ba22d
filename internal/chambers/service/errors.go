package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrCaseNotFound       = errors.New("case not found")
	ErrAlreadySeeded      = errors.New("database already seeded")
)
