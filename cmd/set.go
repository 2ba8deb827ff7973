package cmd

import (
	"errors"

	"presetctl/src"
	"presetctl/src/config"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var setCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value, interactively or directly",
	Long: `Set a configuration value in your ~/.presetctl/config.yaml file.
- Call with a key and value to set it directly.
- Call without arguments to launch an interactive prompt.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || len(args) == 2 {
			return nil
		}
		return errors.New("this command requires either 0 or 2 arguments")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 2 {
			return setKeyValue(args[0], args[1])
		}

		templates := &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   `{{ "›" | green | bold }} {{ . | green | bold }}`,
			Inactive: "  {{ . | faint }}",
			Selected: `{{ "✔" | green | bold }} {{ "Selected key:" | bold }} {{ . | yellow }}`,
		}

		selectPrompt := promptui.Select{
			Label:     "Select a configuration key to change",
			Items:     config.ConfigurableKeys,
			Templates: templates,
		}

		_, selectedKey, err := selectPrompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				src.PrintInfo("Configuration cancelled.")
				return nil
			}
			return err
		}

		inputPrompt := promptui.Prompt{
			Label:   "Enter the new value for '" + selectedKey + "'",
			Default: viper.GetString(selectedKey),
		}

		newValue, err := inputPrompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				src.PrintInfo("Configuration cancelled.")
				return nil
			}
			return err
		}

		return setKeyValue(selectedKey, newValue)
	},
}

func setKeyValue(key, value string) error {
	known := false
	for _, k := range config.ConfigurableKeys {
		if k == key {
			known = true
			break
		}
	}
	if !known {
		return errors.New("unknown configuration key '" + key + "'")
	}

	var stored interface{} = value
	if key == "providers.allow_unknown" {
		b, err := cast.ToBoolE(value)
		if err != nil {
			return errors.New("providers.allow_unknown expects true or false")
		}
		stored = b
	}

	if err := config.SaveKey(viper.GetViper(), key, stored); err != nil {
		return err
	}
	viper.Set(key, stored)

	yellow := src.Yellow()
	src.PrintSuccess("Set %s to %s", key, yellow.Sprint(stored))
	return nil
}

func init() {
	rootCmd.AddCommand(setCmd)
}
