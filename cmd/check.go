package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/anisan-cli/dvs/color"
	"github.com/anisan-cli/dvs/constant"
	"github.com/anisan-cli/dvs/icon"
	"github.com/anisan-cli/dvs/key"
	"github.com/anisan-cli/dvs/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkCmd reports whether the configured mpv executable can be found.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the player executable is available",
	Run: func(cmd *cobra.Command, args []string) {
		path, err := exec.LookPath(viper.GetString(key.PlayerMPV))
		if err != nil {
			printMissingDependencyError(viper.GetString(key.PlayerMPV))
			os.Exit(1)
		}

		cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
	},
}

// CheckDependencies exits when the configured mpv executable is not in PATH.
func CheckDependencies() {
	bin := viper.GetString(key.PlayerMPV)
	if _, err := exec.LookPath(bin); err != nil {
		printMissingDependencyError(bin)
		os.Exit(1)
	}
}

func installHint() string {
	switch runtime.GOOS {
	case constant.Darwin:
		return "brew install mpv"
	case constant.Linux:
		return "sudo apt install mpv"
	case constant.Windows:
		return "scoop install mpv"
	default:
		return ""
	}
}

func printMissingDependencyError(dep string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s Missing player", icon.Get(icon.Fail)))
	body := style.New().Foreground(color.Text).Render(fmt.Sprintf("%q was not found in your PATH. Set %s to its location.", dep, key.PlayerMPV))

	var hint string
	if install := installHint(); install != "" {
		hint = fmt.Sprintf("\nTo install it, try running:\n  %s", style.New().Foreground(color.Mauve).Bold(true).Render(install))
	}

	fmt.Println(box.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, hint)))
}
