package cmd

import (
	"fmt"
	"os"

	"presetctl/src"
	"presetctl/src/config"
	"presetctl/src/preset"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type VersionInfo struct {
	Branch string
	Status string
	Number string
	Commit string
}

var rootCmd = &cobra.Command{
	Use:           "presetctl",
	Short:         "presetctl - Validate and resolve LLM model presets.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute(versionInfo VersionInfo) {
	fullVersion := fmt.Sprintf("%s %s %s %s",
		versionInfo.Branch, versionInfo.Status, versionInfo.Number, versionInfo.Commit)
	rootCmd.Version = fullVersion

	if err := rootCmd.Execute(); err != nil {
		src.PrintError("Error: %v", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("file", "f", "", "Preset file to load (.yaml, .yml or .json); defaults to the built-in presets")
	rootCmd.PersistentFlags().Bool("allow-unknown", false, "Accept provider classes without a known integration")
	cobra.CheckErr(viper.BindPFlag("presets_file", rootCmd.PersistentFlags().Lookup("file")))
	cobra.CheckErr(viper.BindPFlag("providers.allow_unknown", rootCmd.PersistentFlags().Lookup("allow-unknown")))
}

func initConfig() {
	cobra.CheckErr(config.Init(viper.GetViper()))
}

func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

func loadRegistry() (*config.Config, *preset.Registry, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	reg, err := cfg.LoadRegistry()
	if err != nil {
		return nil, nil, err
	}
	return cfg, reg, nil
}
