// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Dvs is the canonical application identifier used for filesystem paths and CLI branding.
	Dvs = "dvs"

	// Version is the current application semantic version string.
	Version = "0.3.0"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// DescriptionButtonLabel is the default caption of the description affordance.
const DescriptionButtonLabel = "Described Video"

// Style classes toggled on the two-variant affordance.
const (
	ClassDescriptionButton = "description-button"
	ClassDescribed         = "described"
	ClassNotDescribed      = "not-described"
	ClassMenuTitle         = "menu-title"
)
