package config

// CacheConfig holds settings for the perft transposition table.
type CacheConfig struct {
	// Entries caps the table size; 0 disables the table
	Entries int
}

// NewCacheConfig creates a CacheConfig with default values.
func NewCacheConfig() *CacheConfig {
	return &CacheConfig{}
}

// Enabled reports whether perft should use a table.
func (c *CacheConfig) Enabled() bool {
	return c.Entries > 0
}
