// Package scanner implements the duplicate-detection pipeline: exact
// content grouping, optional line-based similarity grouping, and the
// resolution pass that produces the final keeper to redundant mapping.
//
// The pipeline is fully synchronous and owns its working set for the
// duration of a run; there is no shared state between runs.
package scanner

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/dupfinder/pkg/logging"
	"github.com/arthur-debert/dupfinder/pkg/types"
)

// Options defines the inputs for a scan
type Options struct {
	// Folder is the absolute path of the directory to scan. Only files
	// directly inside it are considered; subdirectories are not entered.
	Folder string

	// Threshold, when non-nil and strictly below 1.0, enables the
	// similarity phase. A threshold of exactly 1.0 is accepted but
	// disables the phase: exact matching already covers it at the byte
	// level.
	Threshold *float64
}

// Scanner runs the scan pipeline against a filesystem
type Scanner struct {
	fs     types.FS
	logger zerolog.Logger

	// entries caches per-file state (digest, line sequence) so each is
	// computed at most once per run
	entries map[string]*fileEntry

	// Progress, if set, is called after each file has been fingerprinted
	// during the exact-match phase
	Progress func(done, total int)
}

// New creates a Scanner backed by the given filesystem
func New(fsys types.FS) *Scanner {
	return &Scanner{
		fs:      fsys,
		logger:  logging.GetLogger("scanner"),
		entries: make(map[string]*fileEntry),
	}
}

// Scan runs both phases over the folder and returns the resolved
// result. Per-file problems are logged and absorbed; only a failure to
// enumerate the folder itself is returned as an error.
func (s *Scanner) Scan(opts Options) (*types.ScanResult, error) {
	done := logging.LogOperationStart(s.logger, "scan")
	defer done()

	files, err := s.listFiles(opts.Folder)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("folder", opts.Folder).Int("files", len(files)).Msg("Scanning folder")

	groups, survivors := s.groupExact(files)
	s.logger.Info().Int("exactDuplicates", redundantCount(groups)).Msg("Exact-match phase complete")

	if opts.Threshold != nil && *opts.Threshold < 1.0 {
		before := redundantCount(groups)
		s.groupSimilar(survivors, groups, *opts.Threshold)
		s.logger.Info().
			Float64("threshold", *opts.Threshold).
			Int("similarFiles", redundantCount(groups)-before).
			Msg("Similarity phase complete")
	} else if opts.Threshold != nil {
		s.logger.Debug().Msg("Similarity threshold is 1.0, covered by exact matching")
	}

	return s.resolve(groups), nil
}

// entry returns the cached per-run state for a path
func (s *Scanner) entry(path string) *fileEntry {
	if e, ok := s.entries[path]; ok {
		return e
	}
	e := &fileEntry{path: path}
	s.entries[path] = e
	return e
}

func redundantCount(groups map[string]*types.DuplicateGroup) int {
	total := 0
	for _, g := range groups {
		total += len(g.Redundant)
	}
	return total
}
