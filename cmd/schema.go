package cmd

import (
	"encoding/json"

	"github.com/anisan-cli/dvs/manifest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

// schemaCmd prints the JSON schema of manifest files.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of manifest files",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(manifest.Schema()))
	},
}
