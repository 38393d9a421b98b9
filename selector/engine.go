// Package selector owns the current description variant and performs live
// source switches that keep playback position and pause state.
package selector

import "github.com/anisan-cli/dvs/source"

// Preload is the engine's loading hint for a new source.
type Preload string

const (
	PreloadNone     Preload = "none"
	PreloadMetadata Preload = "metadata"
	PreloadAuto     Preload = "auto"
)

// ParsePreload maps a config value to a Preload, defaulting to auto.
func ParsePreload(s string) Preload {
	switch p := Preload(s); p {
	case PreloadNone, PreloadMetadata, PreloadAuto:
		return p
	default:
		return PreloadAuto
	}
}

// Engine is the host playback contract the controller drives.
type Engine interface {
	// Sources returns the source list the engine was initialized with.
	Sources() []source.Descriptor
	// SetSource asks the engine to load a new source list.
	SetSource(sources []source.Descriptor) error

	CurrentTime() (float64, error)
	SetCurrentTime(seconds float64) error
	Paused() (bool, error)
	Play() error

	Preload() Preload
	SetPreload(p Preload)

	// MarkStarted suppresses any idle or poster overlay.
	MarkStarted()

	// OnceMetadataLoaded registers fn for the next metadata-loaded signal only.
	// Metadata-loaded is never signalled while preload is none.
	OnceMetadataLoaded(fn func())
}
