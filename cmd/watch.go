package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"presetctl/src"
	"presetctl/src/preset"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the preset file loaded and reload it whenever it changes",
	Long: `Load the configured preset file and reload it on every change.
An invalid edit is reported and the previously loaded presets stay in effect.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, reg, err := loadRegistry()
		if err != nil {
			return err
		}
		if cfg.PresetsFile == "" {
			return errors.New("watch needs a preset file; pass --file or set presets_file")
		}

		store := preset.NewStore(reg)
		src.PrintSuccess("Loaded %d presets from %s (revision %s)", reg.Len(), cfg.PresetsFile, reg.Revision())

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return store.Watch(ctx, cfg.PresetsFile, func(next *preset.Registry, err error) {
			if err != nil {
				src.PrintError("Reload failed, still serving revision %s: %v", store.Current().Revision(), err)
				return
			}
			src.PrintSuccess("Reloaded %d presets (revision %s)", next.Len(), next.Revision())
		}, cfg.LoadOptions()...)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
