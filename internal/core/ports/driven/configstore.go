package driven

// ConfigStore provides persistent key-value configuration.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	GetString(key string) string

	// GetFloat retrieves a float configuration value.
	GetFloat(key string) float64

	// GetStrings retrieves a string-slice configuration value.
	GetStrings(key string) []string

	// Set stores a configuration value.
	Set(key string, value any) error

	// Save persists the configuration.
	Save() error
}
