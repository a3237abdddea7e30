package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNoProfile indicates that an operation requires an onboarded user profile.
var ErrNoProfile = errors.New("no user profile exists")

// ErrNoAPIKey indicates that an external service credential is not configured.
var ErrNoAPIKey = errors.New("api key not configured")

// ErrPersistence indicates that the snapshot store failed to read or write.
// It is reported but never fatal: the in-memory state stays authoritative.
var ErrPersistence = errors.New("persistence failure")
