package core

// RuntimeConfig contains the terminal dimensions and loop rate handed to the
// platform at startup.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	PollRate int // Loop iterations per second (bounds the sleep between iterations)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		PollRate: 500,
	}
}
