package media

import "errors"

// Sentinel kinds for media client errors.
var (
	ErrEmptyReference = errors.New("empty media reference")
	ErrReleaseFailed  = errors.New("media release failed")
)
