package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"presetctl/src"
	"presetctl/src/preset"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Pick a preset interactively and print what it resolves to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, reg, err := loadRegistry()
		if err != nil {
			return err
		}
		records := reg.List()
		if len(records) == 0 {
			return preset.ErrEmptyRegistry
		}

		templates := &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   `{{ "›" | green | bold }} {{ .DisplayName | green | bold }} {{ .ModelProviderClass | faint }}`,
			Inactive: "  {{ .DisplayName }} {{ .ModelProviderClass | faint }}",
			Selected: `{{ "✔" | green | bold }} {{ "Selected preset:" | bold }} {{ .DisplayName | yellow }}`,
			Details: `
{{ "Model:" | faint }}	{{ .ModelName }}
{{ "Tokens:" | faint }}	{{ .InitialTokensMax }}`,
		}

		selectPrompt := promptui.Select{
			Label:     "Select a model preset (Use ↑/↓, / to search)",
			Items:     records,
			Templates: templates,
			Size:      10,
			Searcher: func(input string, index int) bool {
				return strings.Contains(strings.ToLower(records[index].DisplayName), strings.ToLower(input))
			},
		}

		i, _, err := selectPrompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				src.PrintInfo("Selection cancelled.")
				return nil
			}
			return err
		}

		rec, err := reg.Get(records[i].DisplayName)
		if err != nil {
			return err
		}
		fmt.Println()
		src.PrintPreset(os.Stdout, rec)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)
}
