// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":5001".
	Addr string `koanf:"addr"`

	// MongoURI is the connection string for the document store.
	MongoURI string `koanf:"mongo_uri"`

	// MongoDatabase names the database holding all collections.
	MongoDatabase string `koanf:"mongo_database"`

	// StoreTimeoutMS bounds every single document store call.
	StoreTimeoutMS int `koanf:"store_timeout_ms"`

	// MediaCloud, MediaAPIKey and MediaAPISecret identify the external
	// media provider. Release calls are disabled when any is empty.
	MediaCloud     string `koanf:"media_cloud"`
	MediaAPIKey    string `koanf:"media_api_key"`
	MediaAPISecret string `koanf:"media_api_secret"`

	// Departments is the canonical set of names seeded into both ledgers.
	Departments []string `koanf:"departments"`

	// MaxListLimit caps the number of documents returned by list queries.
	MaxListLimit int `koanf:"max_list_limit"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":5001",
		MongoURI:       "mongodb://localhost:27017",
		MongoDatabase:  "campus",
		StoreTimeoutMS: 10_000,
		Departments: []string{
			"CSE", "ECE", "EEE", "MECH", "CIVIL", "CHEM", "META", "ARCHI",
		},
		MaxListLimit: 500,
	}
}
