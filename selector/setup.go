package selector

import (
	"github.com/anisan-cli/dvs/affordance"
	"github.com/anisan-cli/dvs/constant"
	"github.com/anisan-cli/dvs/event"
	"github.com/anisan-cli/dvs/key"
	"github.com/anisan-cli/dvs/log"
	"github.com/anisan-cli/dvs/source"
	"github.com/anisan-cli/dvs/variant"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Options configures Setup.
type Options struct {
	// DefaultVariant is a comma separated priority list of startup variants.
	DefaultVariant string
	// RequiredTypes lists media types every offered variant must provide.
	RequiredTypes []string
	// Caption labels the affordance.
	Caption string
}

// OptionsFromConfig reads Options from viper.
func OptionsFromConfig() Options {
	return Options{
		DefaultVariant: viper.GetString(key.DescribedDefault),
		RequiredTypes:  viper.GetStringSlice(key.DescribedRequiredTypes),
		Caption:        viper.GetString(key.DescribedButtonLabel),
	}
}

// Setup groups the engine's sources into variants, validates them, applies the
// startup preference and adds a toggle or a menu to bar.
// It reports false, and builds nothing, when fewer than two variants remain.
func Setup(engine Engine, bus *event.Bus, bar affordance.ControlBar, opts Options) (*Controller, affordance.Affordance, bool) {
	set := variant.Build(engine.Sources())
	set = variant.FilterByRequiredTypes(set, opts.RequiredTypes)

	if set.Len() < 2 {
		log.Infof("description selector disabled: %d valid variants", set.Len())
		return nil, nil, false
	}

	c := New(set, engine, bus)

	if k, ok := variant.ResolveDefault(set, opts.DefaultVariant).Get(); ok {
		c.start(k)
	} else if opts.DefaultVariant != "" {
		log.Warnf("no default variant of %q is available (closest: %v)",
			opts.DefaultVariant,
			lo.FlatMap(variant.Priorities(opts.DefaultVariant), func(p source.Key, _ int) []source.Key {
				return variant.Suggest(set, string(p))
			}))
	}

	caption := opts.Caption
	if caption == "" {
		caption = constant.DescriptionButtonLabel
	}

	var a affordance.Affordance
	if set.Len() == 2 {
		a = affordance.NewToggle(c, bus, caption)
	} else {
		a = affordance.NewMenu(c, bus, set, caption)
	}

	a.Render(bar)
	bar.Add(a)

	bus.Emit(event.DescriptionChanged)
	return c, a, true
}
