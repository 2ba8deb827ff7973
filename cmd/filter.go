package cmd

import (
	"os"

	"presetctl/src"
	"presetctl/src/preset"

	"github.com/spf13/cobra"
)

var filterLoose bool

var filterCmd = &cobra.Command{
	Use:   "filter <provider class>",
	Short: "List the presets served by one provider class",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, reg, err := loadRegistry()
		if err != nil {
			return err
		}

		provider := args[0]
		if filterLoose {
			provider, _ = preset.NormalizeProvider(provider)
		}

		records := reg.FilterByProvider(provider)
		if len(records) == 0 {
			src.PrintInfo("No presets for provider class '%s'.", provider)
			return nil
		}
		return src.PrintPresetTable(os.Stdout, records)
	},
}

func init() {
	filterCmd.Flags().BoolVarP(&filterLoose, "loose", "l", false, "Accept provider aliases such as 'anthropic' or 'xai'")
	rootCmd.AddCommand(filterCmd)
}
