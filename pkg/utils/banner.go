package utils

import (
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// PrintBanner prints the big banner on a terminal and the compact one otherwise
func PrintBanner(version string) {
	if !IsTerminal(os.Stdout) {
		PrintCompactBanner(version)
		return
	}

	banner := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("MR", pterm.NewStyle(pterm.FgLightCyan)),
		pterm.NewLettersFromStringWithStyle("GEN", pterm.NewStyle(pterm.FgLightMagenta)),
	)
	banner.Render()

	pterm.DefaultCenter.Printf("v%s - Random MapReduce Input Generator\n", version)
	pterm.Println()
}

// PrintCompactBanner prints a compact banner for pipes and CI
func PrintCompactBanner(version string) {
	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgDarkGray)).
		WithTextStyle(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold)).
		Printf(" mrgen v%s ", version)
	pterm.Println()
}

// PrintSection prints a section header
func PrintSection(title string) {
	pterm.DefaultSection.WithWriter(Info.Writer).Println(title)
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
