package cmd

import (
	"os"

	"presetctl/src"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all presets in declaration order",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, reg, err := loadRegistry()
		if err != nil {
			return err
		}
		return src.PrintPresetTable(os.Stdout, reg.List())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
