// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Described Video Selection - these keys drive variant validation and startup selection.
const (
	DescribedDefault       = "described.default"
	DescribedRequiredTypes = "described.required_types"
	DescribedButtonLabel   = "described.button_label"
)

// Media Playback - these keys configure the external playback engine.
const (
	PlayerPreload = "player.preload"
	PlayerMPV     = "player.mpv"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI)
const (
	TUIShowURLs = "tui.show_urls"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment
const (
	CliColored = "cli.colored"
)
