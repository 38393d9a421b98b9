package cmd

import (
	"fmt"

	"github.com/anisan-cli/dvs/filesystem"
	"github.com/anisan-cli/dvs/icon"
	"github.com/anisan-cli/dvs/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"logs", "logs", mo.Some("l"), where.Logs},
	{"stale player sockets", "temp", mo.Some("t"), where.Temp},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd removes logs and leftover IPC sockets.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove logs and leftover player sockets",
	Run: func(cmd *cobra.Command, args []string) {
		targets := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(t.argLong))
		})

		if len(targets) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, target := range targets {
			handleErr(filesystem.API().RemoveAll(target.location()))
			cmd.Printf("%s cleared %s\n", icon.Get(icon.Success), target.name)
		}
	},
}
