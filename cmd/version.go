package cmd

import (
	"presetctl/src"
	"presetctl/src/preset"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the version number of presetctl",
	Aliases: []string{"v"},
	Run: func(cmd *cobra.Command, args []string) {
		src.PrintBlue("presetctl version %s", cmd.Root().Version)
		src.PrintInfo("preset file format %s", preset.FormatVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
