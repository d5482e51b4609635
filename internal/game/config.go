package game

import "time"

// DefaultTickInterval is the frame budget for one loop iteration.
const DefaultTickInterval = 100 * time.Millisecond

// Config holds game configuration options.
type Config struct {
	// TickInterval is the duration of one game tick. Zero means
	// DefaultTickInterval.
	TickInterval time.Duration

	// Seed for random number generation. Used for reproducible food
	// placement. A seed of 0 means a time-based seed.
	Seed int64
}

// tick returns the effective tick interval.
func (c Config) tick() time.Duration {
	if c.TickInterval <= 0 {
		return DefaultTickInterval
	}
	return c.TickInterval
}
