package utils

import (
	"io"
	"os"

	"github.com/pterm/pterm"
)

var (
	Info    = pterm.Info
	Success = pterm.Success
	Warning = pterm.Warning
	Error   = pterm.Error
	Debug   = pterm.Debug
)

// InitLogger enables debug lines on request, sends every printer to out and
// drops colors when out is not a terminal.
func InitLogger(debugMode bool, out io.Writer) {
	if debugMode {
		pterm.EnableDebugMessages()
	} else {
		pterm.DisableDebugMessages()
	}

	if f, ok := out.(*os.File); !ok || !IsTerminal(f) {
		pterm.DisableColor()
	}
	SetOutput(out)
}

// SetOutput points the package printers at w.
func SetOutput(w io.Writer) {
	Info = *pterm.Info.WithWriter(w)
	Success = *pterm.Success.WithWriter(w)
	Warning = *pterm.Warning.WithWriter(w)
	Error = *pterm.Error.WithWriter(w)
	Debug = *pterm.Debug.WithWriter(w)
}
