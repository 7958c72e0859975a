package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	switch strings.ToLower(c.History.Driver) {
	case "postgres", "memory":
	default:
		return fmt.Errorf("history.driver must be \"postgres\" or \"memory\" (got %q)", c.History.Driver)
	}

	if c.Advisor.Model == "" {
		return fmt.Errorf("advisor.model must not be empty")
	}

	if c.Stylist.StyleRatePerMin <= 0 {
		return fmt.Errorf("stylist.style_rate_per_min must be > 0 (got %d)", c.Stylist.StyleRatePerMin)
	}

	return nil
}
