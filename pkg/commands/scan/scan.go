// Package scan implements the scan command: validate the invocation,
// run the duplicate-detection pipeline, and return the frozen result.
package scan

import (
	"github.com/arthur-debert/dupfinder/pkg/config"
	"github.com/arthur-debert/dupfinder/pkg/filesystem"
	"github.com/arthur-debert/dupfinder/pkg/logging"
	"github.com/arthur-debert/dupfinder/pkg/paths"
	"github.com/arthur-debert/dupfinder/pkg/scanner"
	"github.com/arthur-debert/dupfinder/pkg/types"
)

// Options defines the options for the Scan command.
type Options struct {
	// Folder is the directory to scan; resolved to an absolute path and
	// validated before anything is read.
	Folder string

	// Threshold enables the similarity phase when set below 1.0
	Threshold *float64

	// FS is the filesystem to scan; defaults to the OS filesystem
	FS types.FS

	// Progress, if set, receives hashing progress during phase 1
	Progress func(done, total int)
}

// Scan validates the invocation and runs both detection phases.
func Scan(opts Options) (*types.ScanResult, error) {
	log := logging.GetLogger("commands.scan")
	log.Debug().Str("command", "Scan").Msg("Executing command")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	if opts.Threshold != nil {
		if err := config.ValidateThreshold(*opts.Threshold); err != nil {
			return nil, err
		}
	}

	folder, err := paths.ResolveScanDir(fsys, opts.Folder)
	if err != nil {
		return nil, err
	}

	s := scanner.New(fsys)
	s.Progress = opts.Progress

	result, err := s.Scan(scanner.Options{
		Folder:    folder,
		Threshold: opts.Threshold,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("command", "Scan").
		Int("groups", len(result.Groups)).
		Int("redundant", result.TotalRedundant()).
		Msg("Command finished")
	return result, nil
}
