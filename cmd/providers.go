package cmd

import (
	"fmt"

	"presetctl/src"
	"presetctl/src/preset"

	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Show supported provider classes and how many presets use each",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, reg, err := loadRegistry()
		if err != nil {
			return err
		}

		yellow := src.Yellow()
		src.PrintHighlight("--- Supported Provider Classes ---")
		for _, p := range preset.SupportedProviders {
			fmt.Printf("%-10s %s presets\n", p, yellow.Sprint(len(reg.FilterByProvider(p))))
		}

		var others []string
		for _, p := range reg.Providers() {
			if !preset.IsSupportedProvider(p) {
				others = append(others, p)
			}
		}
		if len(others) > 0 {
			fmt.Println()
			src.PrintHighlight("--- Additional Provider Classes ---")
			for _, p := range others {
				fmt.Printf("%-10s %s presets\n", p, yellow.Sprint(len(reg.FilterByProvider(p))))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
