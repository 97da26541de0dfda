package service

import "errors"

// Sentinel kinds for core operation failures. The transport layer maps
// these onto response codes; nothing below this package leaks through.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict") // reserved for uniqueness violations
	ErrUnavailable     = errors.New("store unavailable")
)
