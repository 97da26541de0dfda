// Package repository defines the document store interface and errors.
package repository

import (
	"time"

	"github.com/pranayjha5666/harsha4/pkg/logger"
)

// Option applies a configuration option to the MongoStore.
type Option func(*MongoStore)

// WithURI sets the connection string for the store.
func WithURI(uri string) Option {
	return func(s *MongoStore) {
		if uri != "" {
			s.uri = uri
		}
	}
}

// WithDatabase sets the database holding all collections.
func WithDatabase(name string) Option {
	return func(s *MongoStore) {
		if name != "" {
			s.databaseName = name
		}
	}
}

// WithTimeout bounds every single store call. A stalled call fails with
// ErrUnavailable instead of hanging indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(s *MongoStore) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLogger sets a custom logger for the store.
func WithLogger(l logger.Logger) Option {
	return func(s *MongoStore) {
		if l != nil {
			s.logger = l
		}
	}
}
