package src

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"presetctl/src/preset"
)

func Yellow() *color.Color {
	return color.New(color.FgYellow)
}

func PrintBlue(format string, a ...interface{}) {
	blue := color.New(color.FgBlue).SprintFunc()
	fmt.Println(blue(fmt.Sprintf(format, a...)))
}

func PrintSuccess(format string, a ...interface{}) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Println(green(fmt.Sprintf(format, a...)))
}

func PrintError(format string, a ...interface{}) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintln(os.Stderr, red(fmt.Sprintf(format, a...)))
}

func PrintInfo(format string, a ...interface{}) {
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Println(cyan(fmt.Sprintf(format, a...)))
}

func PrintHighlight(format string, a ...interface{}) {
	magenta := color.New(color.FgMagenta).SprintFunc()
	fmt.Println(magenta(fmt.Sprintf(format, a...)))
}

// PrintPresetTable writes records as an aligned table, keeping their order.
func PrintPresetTable(out io.Writer, records []preset.Record) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "DISPLAY NAME\tPROVIDER\tMODEL\tTOKENS")
	fmt.Fprintln(w, "------------\t--------\t-----\t------")

	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", Yellow().Sprint(rec.DisplayName), rec.ModelProviderClass, rec.ModelName, rec.InitialTokensMax)
	}

	return w.Flush()
}

// PrintPreset writes the details of a single record.
func PrintPreset(out io.Writer, rec preset.Record) {
	yellow := Yellow()
	prompt := rec.LLMSystemPrompt
	if prompt == "" {
		prompt = "(none)"
	}

	fmt.Fprintf(out, "Display Name:   %s\n", yellow.Sprint(rec.DisplayName))
	fmt.Fprintf(out, "Provider:       %s\n", yellow.Sprint(rec.ModelProviderClass))
	fmt.Fprintf(out, "Model:          %s\n", yellow.Sprint(rec.ModelName))
	fmt.Fprintf(out, "Token Budget:   %s\n", yellow.Sprint(rec.InitialTokensMax))
	fmt.Fprintf(out, "System Prompt:  %s\n", yellow.Sprint(prompt))
}
