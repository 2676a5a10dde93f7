package scanner

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/arthur-debert/dupfinder/pkg/types"
)

// datePrefixPattern matches file names that start with two digits, a
// period, and two digits (e.g. "12.31-notes.txt"). Such files are
// presumed to be intentionally distinct dated snapshots and are never
// compared for similarity.
var datePrefixPattern = regexp.MustCompile(`^\d{2}\.\d{2}`)

// groupSimilar runs the pairwise similarity pass over the survivor set,
// attaching near-duplicates to existing groups or creating new ones.
//
// Comparison proceeds in sorted-path order and a file is frozen the
// moment it matches an earlier one, so grouping is NOT a transitive
// closure: the grouping key is always the earliest-sorted file that
// directly matched. That greedy behavior is intentional; enforcing
// transitivity would change which files get deleted.
func (s *Scanner) groupSimilar(survivors []string, groups map[string]*types.DuplicateGroup, threshold float64) {
	candidates := append([]string(nil), survivors...)
	sort.Strings(candidates)

	// Files already claimed as redundant in this phase
	claimed := make(map[string]bool)

	// Files already redundant under some keeper from the exact phase
	redundantElsewhere := make(map[string]bool)
	for _, g := range groups {
		for _, path := range g.Redundant {
			redundantElsewhere[path] = true
		}
	}

	warnRead := func(path string, err error) {
		s.logger.Warn().Err(err).Str("path", path).Msg("Could not read file for comparison, skipping")
	}
	warnDecode := func(path string) {
		s.logger.Warn().Str("path", path).Msg("File is not valid UTF-8, comparing with replacement characters")
	}

	for i, source := range candidates {
		if claimed[source] {
			continue
		}

		sourceLines, ok := s.entry(source).lineSequence(s.fs, warnRead, warnDecode)
		if !ok {
			continue
		}

		for _, other := range candidates[i+1:] {
			if datePrefixPattern.MatchString(filepath.Base(source)) ||
				datePrefixPattern.MatchString(filepath.Base(other)) {
				continue
			}
			if claimed[other] {
				continue
			}
			if redundantElsewhere[other] {
				continue
			}

			otherLines, ok := s.entry(other).lineSequence(s.fs, warnRead, warnDecode)
			if !ok {
				continue
			}

			ratio, err := lineRatio(sourceLines, otherLines)
			if err != nil {
				s.logger.Warn().Err(err).
					Str("source", source).
					Str("other", other).
					Msg("Could not compare files, treating as not similar")
				ratio = 0.0
			}
			s.logger.Trace().
				Str("source", source).
				Str("other", other).
				Float64("ratio", ratio).
				Msg("Compared line sequences")

			if ratio >= threshold {
				group, exists := groups[source]
				if !exists {
					group = &types.DuplicateGroup{Keeper: source}
					groups[source] = group
				}
				group.Redundant = append(group.Redundant, other)
				claimed[other] = true
				s.logger.Info().
					Str("keeper", filepath.Base(source)).
					Str("similar", filepath.Base(other)).
					Float64("ratio", ratio).
					Msg("Found similar file")
			}
		}
	}
}

// lineRatio computes the sequence-alignment similarity ratio of two
// line sequences in [0,1]. The auto-junk heuristic is disabled so
// repeated common lines are not discounted. Internal faults surface as
// an error rather than a panic.
func lineRatio(a, b []string) (ratio float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sequence comparison failed: %v", r)
		}
	}()
	matcher := difflib.NewMatcherWithJunk(a, b, false, nil)
	return matcher.Ratio(), nil
}
