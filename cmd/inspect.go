package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anisan-cli/dvs/color"
	"github.com/anisan-cli/dvs/icon"
	"github.com/anisan-cli/dvs/manifest"
	"github.com/anisan-cli/dvs/selector"
	"github.com/anisan-cli/dvs/source"
	"github.com/anisan-cli/dvs/style"
	"github.com/anisan-cli/dvs/util"
	"github.com/anisan-cli/dvs/variant"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const (
	formDisabled = "disabled"
	formToggle   = "toggle"
	formMenu     = "menu"
)

type inspectedVariant struct {
	Key     source.Key          `json:"key"`
	Label   string              `json:"label"`
	Sources []source.Descriptor `json:"sources"`
	Valid   bool                `json:"valid"`
	Missing []string            `json:"missing,omitempty"`
}

type inspection struct {
	Title       string             `json:"title"`
	Variants    []inspectedVariant `json:"variants"`
	Form        string             `json:"form"`
	Order       []source.Key       `json:"order,omitempty"`
	Start       source.Key         `json:"start"`
	Suggestions []source.Key       `json:"suggestions,omitempty"`
}

// inspect runs discovery, validation and startup resolution without a player.
func inspect(m *manifest.Manifest, opts selector.Options) inspection {
	all := variant.Build(m.Sources)
	valid := variant.FilterByRequiredTypes(all, opts.RequiredTypes)

	result := inspection{
		Title: m.Title,
		Variants: lo.Map(all.Keys(), func(k source.Key, _ int) inspectedVariant {
			group, _ := all.Get(k)
			return inspectedVariant{
				Key:     k,
				Label:   k.Label(),
				Sources: group,
				Valid:   valid.Has(k),
				Missing: variant.Missing(all, k, opts.RequiredTypes),
			}
		}),
		Form:  formDisabled,
		Start: m.Sources[0].Key,
	}

	switch {
	case valid.Len() < 2:
		return result
	case valid.Len() == 2:
		result.Form = formToggle
	default:
		result.Form = formMenu
		result.Order = variant.Ordered(valid)
	}

	if k, ok := variant.ResolveDefault(valid, opts.DefaultVariant).Get(); ok {
		result.Start = k
	} else {
		result.Suggestions = lo.Uniq(lo.FlatMap(variant.Priorities(opts.DefaultVariant), func(p source.Key, _ int) []source.Key {
			return variant.Suggest(valid, string(p))
		}))
	}

	return result
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
}

// inspectCmd shows how a manifest's sources group into variants.
var inspectCmd = &cobra.Command{
	Use:               "inspect [manifest]",
	Short:             "Show the variants of a manifest and the control they produce",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionManifests,
	Run: func(cmd *cobra.Command, args []string) {
		m, err := manifest.Load(args[0])
		handleErr(err)

		result := inspect(m, selector.OptionsFromConfig())

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(result))
			return
		}

		cmd.Print(prettyInspection(result))
	},
}

func prettyInspection(r inspection) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n", style.Title(r.Title), style.Faint(util.Quantify(len(r.Variants), "variant", "variants")))

	for _, v := range r.Variants {
		mark := style.Fg(color.Green)(icon.Get(icon.Success))
		if !v.Valid {
			mark = style.Fg(color.Red)(icon.Get(icon.Fail))
		}

		fmt.Fprintf(&b, "%s %s %s\n", mark, style.Bold(v.Label), style.Faint(fmt.Sprintf("(%s)", v.Key)))
		for _, d := range v.Sources {
			fmt.Fprintf(&b, "    %s\n", d)
		}
		if len(v.Missing) > 0 {
			fmt.Fprintf(&b, "    %s %s\n", style.Fg(color.Red)("missing"), strings.Join(v.Missing, ", "))
		}
	}

	fmt.Fprintf(&b, "\n%s %s\n", style.Fg(color.Purple)("control"), r.Form)
	if len(r.Order) > 0 {
		labels := lo.Map(r.Order, func(k source.Key, _ int) string { return k.Label() })
		fmt.Fprintf(&b, "%s %s\n", style.Fg(color.Purple)("entries"), strings.Join(labels, ", "))
	}

	fmt.Fprintf(&b, "%s %s\n", style.Fg(color.Purple)("start"), r.Start.Label())
	if len(r.Suggestions) > 0 {
		fmt.Fprintf(&b, "%s %s\n", style.Fg(color.Yellow)("did you mean"), strings.Join(lo.Map(r.Suggestions, func(k source.Key, _ int) string {
			return string(k)
		}), ", "))
	}

	return b.String()
}
