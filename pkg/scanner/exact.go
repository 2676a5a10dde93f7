package scanner

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/dupfinder/pkg/errors"
	"github.com/arthur-debert/dupfinder/pkg/types"
)

// listFiles enumerates the regular, non-symlink files directly inside
// dir. Subdirectories are not entered.
func (s *Scanner) listFiles(dir string) ([]string, error) {
	dirEntries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFolderAccess, "could not read folder %s", dir)
	}

	var files []string
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := s.fs.Lstat(path)
		if err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("Could not stat file, skipping")
			continue
		}
		// Mode().IsRegular() is false for symlinks under Lstat
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// groupExact fingerprints every file and groups byte-identical ones.
// For each group the lexicographically smallest path becomes keeper.
// The returned survivor list holds one representative per group plus
// all singletons; unreadable files appear in neither.
//
// Grouping is deterministic regardless of directory enumeration order
// because member paths are sorted before the keeper is chosen.
func (s *Scanner) groupExact(files []string) (map[string]*types.DuplicateGroup, []string) {
	byDigest := make(map[string][]string)
	var digests []string

	for i, path := range files {
		digest, err := s.entry(path).checksum(s.fs)
		if err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("Could not read file, excluding from scan")
		} else {
			if _, seen := byDigest[digest]; !seen {
				digests = append(digests, digest)
			}
			byDigest[digest] = append(byDigest[digest], path)
		}
		if s.Progress != nil {
			s.Progress(i+1, len(files))
		}
	}

	groups := make(map[string]*types.DuplicateGroup)
	var survivors []string

	for _, digest := range digests {
		paths := byDigest[digest]
		if len(paths) == 1 {
			survivors = append(survivors, paths[0])
			continue
		}
		sort.Strings(paths)
		keeper := paths[0]
		groups[keeper] = &types.DuplicateGroup{
			Keeper:    keeper,
			Redundant: append([]string(nil), paths[1:]...),
		}
		survivors = append(survivors, keeper)
		s.logger.Debug().
			Str("keeper", keeper).
			Int("copies", len(paths)-1).
			Msg("Exact duplicate group")
	}

	return groups, survivors
}
