// Package icon renders UI symbols in the configured variant.
package icon

import (
	"github.com/anisan-cli/dvs/key"
	"github.com/spf13/viper"
)

const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants lists the supported icon styles.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

// Icon identifies a symbol.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Selected
	Described
	Playing
	Paused
)

type iconDef struct {
	emoji, nerd, plain string
}

var icons = map[Icon]iconDef{
	Fail:      {"💀", "\uf00d", "x"},
	Success:   {"🎉", "\uf00c", "v"},
	Selected:  {"👉", "\uf054", ">"},
	Described: {"🗣️", "\U000f050d", "AD"},
	Playing:   {"▶️", "\uf04b", ">"},
	Paused:    {"⏸️", "\uf04c", "||"},
}

// Get renders the icon for the current icons.variant, or "" for an unknown variant.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}

	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return def.emoji
	case nerd:
		return def.nerd
	case plain:
		return def.plain
	default:
		return ""
	}
}
