package scanner

import (
	"sort"

	"github.com/arthur-debert/dupfinder/pkg/types"
)

// resolve merges the phase outputs into a frozen ScanResult that
// honors the no-overlap invariant: no path appears as both a keeper
// and a redundant member, and no path is redundant in two groups.
// The defensive checks mirror the grouping safeguards: with the greedy
// single-pass phases they should never fire, but a violation must drop
// the offending entries rather than surface an inconsistent result.
func (s *Scanner) resolve(groups map[string]*types.DuplicateGroup) *types.ScanResult {
	allRedundant := make(map[string]bool)
	for _, g := range groups {
		for _, path := range g.Redundant {
			allRedundant[path] = true
		}
	}

	result := types.NewScanResult()
	for keeper, group := range groups {
		if allRedundant[keeper] {
			s.logger.Warn().
				Str("path", keeper).
				Msg("File is both keeper and redundant, dropping its group")
			continue
		}

		var redundant []string
		seen := make(map[string]bool)
		for _, path := range group.Redundant {
			// A redundant entry that is itself a keeper elsewhere would
			// delete a file another group depends on
			if _, isKeeper := groups[path]; isKeeper {
				s.logger.Warn().
					Str("path", path).
					Msg("Redundant file is a keeper elsewhere, not deleting it")
				continue
			}
			if seen[path] {
				continue
			}
			seen[path] = true
			redundant = append(redundant, path)
		}
		sort.Strings(redundant)

		if len(redundant) == 0 {
			continue
		}
		result.Groups[keeper] = &types.DuplicateGroup{
			Keeper:    keeper,
			Redundant: redundant,
		}
	}

	return result
}
