package config

import (
	"fmt"
	"time"
)

// ShutdownTimeout parses Server.ShutdownTimeout. It must be positive.
func (c Config) ShutdownTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		return 0, fmt.Errorf("%w: shutdown timeout %q: %v", ErrInvalidConfig, c.Server.ShutdownTimeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: shutdown timeout must be positive, got %s", ErrInvalidConfig, d)
	}

	return d, nil
}
