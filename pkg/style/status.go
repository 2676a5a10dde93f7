package style

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Status types for files in the rendered output
type Status string

const (
	StatusKeeper    Status = "keeper"    // File retained as the canonical copy
	StatusRedundant Status = "redundant" // File identified for removal
	StatusDeleted   Status = "deleted"   // File actually removed
	StatusFailed    Status = "failed"    // Removal attempted and failed
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusKeeper:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case StatusRedundant:
		return pterm.NewStyle(pterm.FgYellow)
	case StatusDeleted:
		return pterm.NewStyle(pterm.FgRed)
	case StatusFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// ConfigureColors disables colored output when asked to or when stdout
// is not a terminal
func ConfigureColors(noColor bool) {
	if noColor || !Interactive() {
		pterm.DisableColor()
	}
}

// Interactive reports whether stdout is a terminal
func Interactive() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}
