package resilience

import "time"

// Circuit breaker settings
const (
	DefaultThreshold         = 5
	DefaultResetTimeout      = 30 * time.Second
	DefaultHalfOpenSuccesses = 3

	// Fast settings trip early; used on the market API path so a dead
	// upstream stops burning pipeline passes quickly.
	FastThreshold         = 3
	FastResetTimeout      = 10 * time.Second
	FastHalfOpenSuccesses = 2
)

// Config holds circuit breaker settings.
type Config struct {
	Threshold         int           // failures before opening
	ResetTimeout      time.Duration // wait before half-open attempt
	HalfOpenSuccesses int           // successes needed to close
}

// DefaultConfig returns lenient general-purpose settings.
func DefaultConfig() Config {
	return Config{
		Threshold:         DefaultThreshold,
		ResetTimeout:      DefaultResetTimeout,
		HalfOpenSuccesses: DefaultHalfOpenSuccesses,
	}
}

// FastConfig returns the early-tripping settings for upstream fetches.
func FastConfig() Config {
	return Config{
		Threshold:         FastThreshold,
		ResetTimeout:      FastResetTimeout,
		HalfOpenSuccesses: FastHalfOpenSuccesses,
	}
}

func (c Config) withDefaults() Config {
	if c.Threshold <= 0 {
		c.Threshold = DefaultThreshold
	}
	if c.ResetTimeout <= 0 {
		c.ResetTimeout = DefaultResetTimeout
	}
	if c.HalfOpenSuccesses <= 0 {
		c.HalfOpenSuccesses = DefaultHalfOpenSuccesses
	}
	return c
}
