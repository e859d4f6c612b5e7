package helpers

import "time"

// ParseDuration parses s as a time.Duration, returning fallback when s is
// empty or malformed. Config values are validated at load time, so the
// fallback mostly covers tests that build configs by hand.
func ParseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
