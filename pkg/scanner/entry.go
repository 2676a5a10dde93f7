package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/dupfinder/pkg/internal/hashutil"
	"github.com/arthur-debert/dupfinder/pkg/types"
)

// fileEntry holds the lazily computed, cached per-run state of one file
type fileEntry struct {
	path string

	digest     string
	digestErr  error
	digestDone bool

	lines     []string
	linesOK   bool
	linesDone bool
}

// checksum returns the file's content digest, computing it on first use
func (e *fileEntry) checksum(fsys types.FS) (string, error) {
	if !e.digestDone {
		e.digest, e.digestErr = hashutil.CalculateFileChecksum(fsys, e.path)
		e.digestDone = true
	}
	return e.digest, e.digestErr
}

// lineSequence returns the file's materialized line sequence, reading
// and decoding it on first use. The second return is false when the
// file could not be read at all.
func (e *fileEntry) lineSequence(fsys types.FS, warn func(path string, err error), replaced func(path string)) ([]string, bool) {
	if e.linesDone {
		return e.lines, e.linesOK
	}
	e.linesDone = true

	data, err := fsys.ReadFile(e.path)
	if err != nil {
		warn(e.path, err)
		return nil, false
	}

	text := string(data)
	if !utf8.ValidString(text) {
		// Permissive re-decode: invalid sequences become replacement runes
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
		replaced(e.path)
	}

	e.lines = splitLines(text)
	e.linesOK = true
	return e.lines, true
}

// splitLines splits text into lines keeping terminators, with no
// phantom empty element after a trailing newline. Keeping terminators
// means a file with and without a final newline compare as different.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
