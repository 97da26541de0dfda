package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound    = errors.New("document not found")
	ErrUnavailable = errors.New("document store unavailable")
	ErrBadLedger   = errors.New("unknown ledger")
)
