package database

// Config holds database settings. The bot ships with an embedded sqlite
// database, so a file path is all that is needed.
type Config struct {
	Path string `yaml:"path" envconfig:"DB_PATH"`
	// BusyTimeoutMS is passed to the sqlite driver to wait on locked pages
	// instead of failing immediately.
	BusyTimeoutMS int `yaml:"busy_timeout_ms" envconfig:"DB_BUSY_TIMEOUT_MS"`
}
