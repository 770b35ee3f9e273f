package domain

import "errors"

// Every registry operation either returns a valid result or fails with one of
// these kinds. Services wrap them with %w so callers can match via errors.Is
// while still seeing which field or rule was violated.
var ErrRecordNotFound = errors.New("record not found")
var ErrConflict = errors.New("conflict")
var ErrInsufficientBalance = errors.New("insufficient balance")
var ErrUnauthorized = errors.New("unauthorized")
