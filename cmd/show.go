package cmd

import (
	"os"
	"strings"

	"presetctl/src"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [display name]",
	Short: "Show a single preset by its exact display name",
	Long: `Show a single preset by its exact display name.
Without a name, the configured default_preset is shown, or the first preset
when no default is configured.`,
	Aliases: []string{"get"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, reg, err := loadRegistry()
		if err != nil {
			return err
		}

		rec, err := cfg.Resolve(reg, strings.Join(args, " "))
		if err != nil {
			return err
		}
		src.PrintPreset(os.Stdout, rec)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
