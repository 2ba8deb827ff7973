package cmd

import (
	"io"
	"os"

	"presetctl/src"
	"presetctl/src/preset"

	"github.com/spf13/cobra"
)

var (
	exportFormat   string
	exportOutput   string
	exportProvider string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the validated presets in the format the web front-end loads",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		format, err := preset.ParseFormat(exportFormat)
		if err != nil {
			return err
		}

		_, reg, err := loadRegistry()
		if err != nil {
			return err
		}

		records := reg.List()
		if exportProvider != "" {
			records = reg.FilterByProvider(exportProvider)
		}

		var out io.Writer = os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := f.Close(); cerr != nil && err == nil {
					err = cerr
				}
			}()
			out = f
		}

		if err := preset.Encode(out, format, records); err != nil {
			return err
		}
		if exportOutput != "" {
			src.PrintSuccess("Wrote %d presets to %s", len(records), exportOutput)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", string(preset.FormatJSON), "Output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to this file instead of stdout")
	exportCmd.Flags().StringVarP(&exportProvider, "provider", "p", "", "Only export presets for this provider class")
	rootCmd.AddCommand(exportCmd)
}
