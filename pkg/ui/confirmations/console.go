// Package confirmations provides the console dialog guarding delete mode.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/dupfinder/pkg/errors"
)

// ConsoleDialog asks for destructive-operation confirmation on the console
type ConsoleDialog struct {
	in  io.Reader
	out io.Writer
}

// NewConsoleDialog creates a dialog bound to stdin/stdout
func NewConsoleDialog() *ConsoleDialog {
	return &ConsoleDialog{in: os.Stdin, out: os.Stdout}
}

// NewDialog creates a dialog with explicit streams, for tests
func NewDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: in, out: out}
}

// ConfirmDeletion presents the deletion warning and returns true only
// when the user typed the literal answer "yes" (case-insensitive).
// Any other input, including end of input, declines.
func (d *ConsoleDialog) ConfirmDeletion(folder string, threshold *float64) (bool, error) {
	fmt.Fprintf(d.out, "WARNING: You are about to permanently delete ")
	if threshold != nil {
		fmt.Fprintf(d.out, "similar (>= %.1f%%) and ", *threshold*100)
	}
	fmt.Fprintf(d.out, "exact duplicate files in '%s'.\n", folder)
	fmt.Fprintln(d.out, "The alphabetically first copy among duplicates is kept.")
	fmt.Fprint(d.out, "Are you absolutely sure? (yes/no): ")

	reader := bufio.NewReader(d.in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return false, nil
		}
		return false, errors.Wrap(err, errors.ErrConfirmReadInput, "failed to read user input")
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "yes", nil
}
