package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Token Errors =====
var (
	ErrEmailRequired = errors.New("email claim is required")
)

// ===== Job Errors =====
var (
	ErrJobNotFound  = errors.New("job not found")
	ErrInvalidJobID = errors.New("invalid job id")
)
