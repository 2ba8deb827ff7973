package cmd

import (
	"errors"

	"presetctl/src"
	"presetctl/src/config"
	"presetctl/src/preset"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Check preset files without loading them into service",
	Long: `Check one or more preset files. Without arguments the configured
presets_file (or the built-in presets) is checked. Exits non-zero if any file
is invalid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			reg, err := cfg.LoadRegistry()
			if err != nil {
				return err
			}
			src.PrintSuccess("%s: %d presets OK", describeSource(cfg), reg.Len())
			return nil
		}

		failed := 0
		for _, path := range args {
			reg, err := preset.LoadFile(path, cfg.LoadOptions()...)
			if err != nil {
				failed++
				src.PrintError("%s: %v", path, err)
				continue
			}
			src.PrintSuccess("%s: %d presets OK", path, reg.Len())
		}

		if failed > 0 {
			return errors.New("one or more preset files are invalid")
		}
		return nil
	},
}

func describeSource(cfg *config.Config) string {
	if cfg.PresetsFile == "" {
		return "built-in presets"
	}
	return cfg.PresetsFile
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
