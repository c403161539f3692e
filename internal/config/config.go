// Package config provides configuration loading and management.
package config

// ServerConfig contains backend connection settings.
type ServerConfig struct {
	// URL is the backend base URL.
	// Env: BUILDMASTER_SERVER_URL, Default: http://localhost:8080
	URL string `json:"url,omitempty" mapstructure:"url"`
}

// CatalogConfig contains component catalog settings.
type CatalogConfig struct {
	// CacheSize bounds the in-memory component cache.
	// Env: BUILDMASTER_CATALOG_CACHESIZE, Default: 256
	CacheSize int `json:"cacheSize,omitempty" mapstructure:"cacheSize"`

	// Mock serves the built-in development dataset instead of
	// calling the backend.
	// Env: BUILDMASTER_CATALOG_MOCK, Default: false
	Mock bool `json:"mock,omitempty" mapstructure:"mock"`
}

// OutputConfig contains display settings.
type OutputConfig struct {
	// Format is the default output format: table, yaml, or json.
	// Env: BUILDMASTER_OUTPUT_FORMAT, Default: "table"
	Format string `json:"format,omitempty" mapstructure:"format"`

	// NoColor disables styled output.
	// Env: BUILDMASTER_OUTPUT_NOCOLOR, Default: false
	NoColor bool `json:"noColor,omitempty" mapstructure:"noColor"`
}

// Config represents the BuildMaster CLI configuration.
// Loaded from ~/.buildmaster/config.yaml; environment variables take
// precedence over file values.
type Config struct {
	// Server contains backend connection settings.
	Server ServerConfig `json:"server,omitempty" mapstructure:"server"`

	// Catalog contains component catalog settings.
	Catalog CatalogConfig `json:"catalog,omitempty" mapstructure:"catalog"`

	// Output contains display settings.
	Output OutputConfig `json:"output,omitempty" mapstructure:"output"`

	// StateDir overrides where the session and working build are
	// persisted.
	// Env: BUILDMASTER_STATE_DIR, Default: ~/.buildmaster/state
	StateDir string `json:"stateDir,omitempty" mapstructure:"stateDir"`
}

// Default values applied when neither file nor environment provide one.
const (
	DefaultServerURL    = "http://localhost:8080"
	DefaultOutputFormat = "table"
	DefaultCacheSize    = 256
)

// DefaultConfig returns a Config with all default values populated.
// Used by `buildmaster config init` to generate the initial file.
func DefaultConfig() *Config {
	return &Config{
		Server:  ServerConfig{URL: DefaultServerURL},
		Catalog: CatalogConfig{CacheSize: DefaultCacheSize},
		Output:  OutputConfig{Format: DefaultOutputFormat},
	}
}

// WithDefaults fills in any unset fields from the defaults.
func (c *Config) WithDefaults() *Config {
	if c.Server.URL == "" {
		c.Server.URL = DefaultServerURL
	}
	if c.Catalog.CacheSize <= 0 {
		c.Catalog.CacheSize = DefaultCacheSize
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultOutputFormat
	}
	return c
}
