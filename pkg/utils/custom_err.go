package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidDestination = errors.New("invalid destination")
	ErrGeneration         = errors.New("itinerary generation failed")
	ErrRender             = errors.New("document rendering failed")
	ErrTripNotFound       = errors.New("trip not found")
	ErrShareNotFound      = errors.New("share link not found or expired")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
)
