package cmd

import (
	"fmt"
	"strings"

	"presetctl/src"
	"presetctl/src/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display the active configuration and loaded presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, reg, err := loadRegistry()
		if err != nil {
			return err
		}

		yellow := src.Yellow()

		src.PrintHighlight("--- presetctl Configuration ---")
		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Printf("Config File:     %s\n", yellow.Sprint(used))
		} else {
			path, _ := config.Path(viper.GetViper())
			fmt.Printf("Config File:     %s\n", yellow.Sprint("Not found (using defaults, would write "+path+")"))
		}
		fmt.Printf("Preset Source:   %s\n", yellow.Sprint(describeSource(cfg)))
		fmt.Printf("Unknown Allowed: %s\n", yellow.Sprint(cfg.Providers.AllowUnknown))
		if len(cfg.Providers.Extra) > 0 {
			fmt.Printf("Extra Providers: %s\n", yellow.Sprint(strings.Join(cfg.Providers.Extra, ", ")))
		}

		defaultVal := "(first preset)"
		if cfg.DefaultPreset != "" {
			defaultVal = cfg.DefaultPreset
		}
		fmt.Printf("Default Preset:  %s\n", yellow.Sprint(defaultVal))

		fmt.Println()
		src.PrintHighlight("--- Loaded Presets ---")
		fmt.Printf("Revision:        %s\n", yellow.Sprint(reg.Revision()))
		fmt.Printf("Presets:         %s\n", yellow.Sprint(reg.Len()))
		fmt.Printf("Providers:       %s\n", yellow.Sprint(strings.Join(reg.Providers(), ", ")))

		if cfg.DefaultPreset != "" {
			if _, err := reg.Get(cfg.DefaultPreset); err != nil {
				src.PrintError("default_preset does not match any loaded preset: %v", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
