package utils

import "errors"

var (
	// client errors
	ErrValidation         = errors.New("invalid request parameters")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTripNotFound       = errors.New("trip not found")
	ErrLocationNotFound   = errors.New("location not found")
	ErrNoGeocodingResult  = errors.New("geocoding produced no results")

	// server errors
	ErrUpstream      = errors.New("upstream service failure")
	ErrDatabaseError = errors.New("database error")
)
