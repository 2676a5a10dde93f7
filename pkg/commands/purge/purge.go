// Package purge implements the deletion stage of delete mode.
//
// Removals are a strictly sequential series of independent filesystem
// operations: a failure is recorded and the batch continues. There is
// no rollback; whatever was removed stays removed.
package purge

import (
	"github.com/arthur-debert/dupfinder/pkg/filesystem"
	"github.com/arthur-debert/dupfinder/pkg/logging"
	"github.com/arthur-debert/dupfinder/pkg/types"
)

// Options defines the options for the Purge command.
type Options struct {
	// Result is the frozen scan result whose redundant files get removed
	Result *types.ScanResult

	// FS is the filesystem to delete from; defaults to the OS filesystem
	FS types.FS

	// OnRemoved, if set, is called after each successful removal
	OnRemoved func(path string)

	// OnFailed, if set, is called for each removal that failed
	OnFailed func(path string, err error)
}

// Purge removes every redundant file in the result. Per-file failures
// are absorbed and surfaced in the returned counts, never as an error.
func Purge(opts Options) *types.PurgeResult {
	log := logging.GetLogger("commands.purge")
	log.Debug().Str("command", "Purge").Msg("Executing command")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	res := &types.PurgeResult{
		Identified: opts.Result.TotalRedundant(),
	}

	for _, keeper := range opts.Result.Keepers() {
		group := opts.Result.Groups[keeper]
		for _, path := range group.Redundant {
			if err := fsys.Remove(path); err != nil {
				log.Warn().Err(err).Str("path", path).Msg("Could not delete file")
				res.Failures = append(res.Failures, types.RemovalFailure{
					Path:   path,
					Reason: err.Error(),
				})
				if opts.OnFailed != nil {
					opts.OnFailed(path, err)
				}
				continue
			}
			res.Removed++
			log.Debug().Str("path", path).Str("keeper", keeper).Msg("Deleted duplicate")
			if opts.OnRemoved != nil {
				opts.OnRemoved(path)
			}
		}
	}

	log.Info().
		Str("command", "Purge").
		Int("identified", res.Identified).
		Int("removed", res.Removed).
		Int("failed", len(res.Failures)).
		Msg("Command finished")
	return res
}
