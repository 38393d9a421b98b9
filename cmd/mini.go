package cmd

import (
	"github.com/anisan-cli/dvs/mini"
	"github.com/anisan-cli/dvs/selector"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)
}

// miniCmd plays a manifest with prompt based controls.
var miniCmd = &cobra.Command{
	Use:               "mini [manifest]",
	Short:             "Play a manifest with minimal prompt based controls",
	Long:              `Play a manifest in a prompt loop instead of the full screen interface. Useful on terminals without alternate screen support.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionManifests,
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		m, engine, err := openSession(args[0])
		handleErr(err)

		handleErr(mini.Run(&mini.Options{
			Manifest: m,
			Engine:   engine,
			Selector: selector.OptionsFromConfig(),
		}))
	},
}
