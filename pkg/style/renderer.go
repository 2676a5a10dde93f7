package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/dupfinder/pkg/types"
)

// Renderer defines the interface for rendering scan output
type Renderer interface {
	RenderScanResult(result *types.ScanResult) string
	RenderReportSummary(result *types.ScanResult) string
	RenderPurgeSummary(res *types.PurgeResult) string
	RenderError(err error) string
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderScanResult renders every duplicate group: the keeper followed
// by its redundant members
func (r *TerminalRenderer) RenderScanResult(result *types.ScanResult) string {
	if result.Empty() {
		return pterm.NewStyle(pterm.FgGray).Sprint("No duplicate files found.")
	}

	var out strings.Builder
	for _, keeper := range result.Keepers() {
		group := result.Groups[keeper]
		out.WriteString(fmt.Sprintf("Keeping: %s\n", StatusStyle(StatusKeeper).Sprint(keeper)))
		for _, path := range group.Redundant {
			out.WriteString(fmt.Sprintf("  duplicate: %s\n", StatusStyle(StatusRedundant).Sprint(path)))
		}
	}
	return strings.TrimRight(out.String(), "\n")
}

// RenderReportSummary renders the report-mode closing line
func (r *TerminalRenderer) RenderReportSummary(result *types.ScanResult) string {
	if result.Empty() {
		return ""
	}
	return fmt.Sprintf("\n%d duplicate files identified across %d groups. Run with --delete to remove them.",
		result.TotalRedundant(), len(result.Groups))
}

// RenderPurgeSummary renders the delete-mode closing lines, including
// each failure individually
func (r *TerminalRenderer) RenderPurgeSummary(res *types.PurgeResult) string {
	var out strings.Builder
	out.WriteString(fmt.Sprintf("\nDeletion complete. %d of %d duplicate files removed.",
		res.Removed, res.Identified))
	for _, failure := range res.Failures {
		out.WriteString(fmt.Sprintf("\n  %s %s: %s",
			StatusStyle(StatusFailed).Sprint("failed"), failure.Path, failure.Reason))
	}
	return out.String()
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// NewProgressBar returns the hashing progress bar used during phase 1
func NewProgressBar(total int) (*pterm.ProgressbarPrinter, error) {
	return pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Hashing files").
		WithRemoveWhenDone(true).
		Start()
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderScanResult renders groups without styling
func (r *PlainRenderer) RenderScanResult(result *types.ScanResult) string {
	if result.Empty() {
		return "No duplicate files found."
	}

	var out strings.Builder
	for _, keeper := range result.Keepers() {
		out.WriteString(fmt.Sprintf("Keeping: %s\n", keeper))
		for _, path := range result.Groups[keeper].Redundant {
			out.WriteString(fmt.Sprintf("  duplicate: %s\n", path))
		}
	}
	return strings.TrimRight(out.String(), "\n")
}

// RenderReportSummary renders the plain report-mode closing line
func (r *PlainRenderer) RenderReportSummary(result *types.ScanResult) string {
	if result.Empty() {
		return ""
	}
	return fmt.Sprintf("\n%d duplicate files identified across %d groups.",
		result.TotalRedundant(), len(result.Groups))
}

// RenderPurgeSummary renders the plain delete-mode closing lines
func (r *PlainRenderer) RenderPurgeSummary(res *types.PurgeResult) string {
	var out strings.Builder
	out.WriteString(fmt.Sprintf("\nDeletion complete. %d of %d duplicate files removed.",
		res.Removed, res.Identified))
	for _, failure := range res.Failures {
		out.WriteString(fmt.Sprintf("\n  failed %s: %s", failure.Path, failure.Reason))
	}
	return out.String()
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", err.Error())
}
