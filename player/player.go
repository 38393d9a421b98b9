// Package player drives an external media player and exposes it as the
// playback engine of the description selector.
package player

// Backend is the process-level control surface of a media player.
type Backend interface {
	// Open starts the player on url.
	Open(url, title string) error
	// Load replaces the playing file of a running player.
	Load(url string) error

	TimePos() (float64, error)
	Duration() (float64, error)
	Paused() (bool, error)
	SetPaused(paused bool) error
	Seek(seconds float64) error

	// Listen forwards player events by name until the player exits.
	Listen(fn func(name string)) error

	Running() bool
	Close() error
	// Wait returns a channel closed when the player process exits.
	Wait() <-chan struct{}
}
