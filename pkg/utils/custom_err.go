package utils

import "errors"

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrBusinessNotFound = errors.New("business not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrTagNotFound      = errors.New("tag not found")
	ErrFileNotFound     = errors.New("file not found")

	ErrSocialNetworkNotFound = errors.New("social network not found")

	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotResourceOwner   = errors.New("account does not own this resource")
	ErrAdminRequired      = errors.New("admin privileges required")
	ErrResetTokenInvalid  = errors.New("invalid or expired reset token")

	ErrDatabaseError = errors.New("database error")
)
