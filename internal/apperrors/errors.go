package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStoreUnavailable indicates that the backing store could not be reached
// or failed mid-call. Callers surface it to the end user as a generic
// "try again" message, never as raw detail.
var ErrStoreUnavailable = errors.New("store unavailable")
