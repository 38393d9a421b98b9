// Package cmd implements the command-line interface of dvs.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/anisan-cli/dvs/color"
	"github.com/anisan-cli/dvs/constant"
	"github.com/anisan-cli/dvs/icon"
	"github.com/anisan-cli/dvs/key"
	"github.com/anisan-cli/dvs/log"
	"github.com/anisan-cli/dvs/manifest"
	"github.com/anisan-cli/dvs/player"
	"github.com/anisan-cli/dvs/selector"
	"github.com/anisan-cli/dvs/style"
	"github.com/anisan-cli/dvs/tui"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (emoji, nerd, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("default", "d", "", "Comma separated priority list of variants to start with")
	lo.Must0(viper.BindPFlag(key.DescribedDefault, rootCmd.PersistentFlags().Lookup("default")))

	rootCmd.PersistentFlags().StringSliceP("require", "r", []string{}, "Media types every offered variant must provide")
	lo.Must0(viper.BindPFlag(key.DescribedRequiredTypes, rootCmd.PersistentFlags().Lookup("require")))

	rootCmd.PersistentFlags().String("preload", "", "Loading hint for new sources (none, metadata, auto)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("preload", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(selector.PreloadNone), string(selector.PreloadMetadata), string(selector.PreloadAuto)}, cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.PlayerPreload, rootCmd.PersistentFlags().Lookup("preload")))
}

// rootCmd plays a manifest in the terminal UI.
var rootCmd = &cobra.Command{
	Use:   constant.Dvs + " [manifest]",
	Short: "Play videos with switchable described video renditions",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - Switch between described and non-described renditions without losing your place"),
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionManifests,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		CheckDependencies()

		m, engine, err := openSession(args[0])
		handleErr(err)

		handleErr(tui.Run(&tui.Options{
			Manifest: m,
			Engine:   engine,
			Selector: selector.OptionsFromConfig(),
		}))
	},
}

// openSession loads the manifest and prepares an mpv backed engine for it.
func openSession(path string) (*manifest.Manifest, *player.Engine, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, nil, err
	}

	log.Infof("loaded %s with %d sources", path, len(m.Sources))

	backend := player.NewMPV(viper.GetString(key.PlayerMPV))
	preload := selector.ParsePreload(viper.GetString(key.PlayerPreload))
	return m, player.NewEngine(backend, m.Title, m.Sources, preload), nil
}

func completionManifests(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"json", "yaml", "yml", "toml"}, cobra.ShellCompDirectiveFilterFileExt
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
