package scanner

import (
	"errors"
	"testing"

	"github.com/arthur-debert/dupfinder/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"single line with newline", "hello\n", []string{"hello\n"}},
		{"single line without newline", "hello", []string{"hello"}},
		{"two lines", "a\nb\n", []string{"a\n", "b\n"}},
		{"trailing partial line", "a\nb", []string{"a\n", "b"}},
		{"blank lines kept", "a\n\nb\n", []string{"a\n", "\n", "b\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitLines(tt.input))
		})
	}
}

func TestLineSequenceCachesResult(t *testing.T) {
	fsys := testutil.NewFakeFS()
	fsys.WriteFile("/scan/a.txt", []byte("one\ntwo\n"))

	entry := &fileEntry{path: "/scan/a.txt"}
	noWarn := func(string, error) { t.Fatal("unexpected read warning") }
	noReplace := func(string) { t.Fatal("unexpected decode warning") }

	lines, ok := entry.lineSequence(fsys, noWarn, noReplace)
	require.True(t, ok)
	assert.Equal(t, []string{"one\n", "two\n"}, lines)

	// Second call must not hit the filesystem again
	fsys.ReadErrors["/scan/a.txt"] = errors.New("boom")
	lines, ok = entry.lineSequence(fsys, noWarn, noReplace)
	require.True(t, ok)
	assert.Equal(t, []string{"one\n", "two\n"}, lines)
}

func TestLineSequenceInvalidUTF8(t *testing.T) {
	fsys := testutil.NewFakeFS()
	fsys.WriteFile("/scan/bin.txt", []byte{0xff, 0xfe, 'h', 'i', '\n'})

	entry := &fileEntry{path: "/scan/bin.txt"}
	replacedPath := ""
	lines, ok := entry.lineSequence(fsys,
		func(string, error) { t.Fatal("unexpected read warning") },
		func(path string) { replacedPath = path })

	require.True(t, ok)
	assert.Equal(t, "/scan/bin.txt", replacedPath)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "hi\n")
}

func TestLineSequenceReadFailure(t *testing.T) {
	fsys := testutil.NewFakeFS()
	fsys.WriteFile("/scan/a.txt", []byte("data"))
	fsys.ReadErrors["/scan/a.txt"] = errors.New("permission denied")

	entry := &fileEntry{path: "/scan/a.txt"}
	warned := false
	_, ok := entry.lineSequence(fsys,
		func(string, error) { warned = true },
		func(string) {})

	assert.False(t, ok)
	assert.True(t, warned)
}

func TestChecksumCachesError(t *testing.T) {
	fsys := testutil.NewFakeFS()
	fsys.WriteFile("/scan/a.txt", []byte("data"))
	fsys.ReadErrors["/scan/a.txt"] = errors.New("io error")

	entry := &fileEntry{path: "/scan/a.txt"}
	_, err := entry.checksum(fsys)
	require.Error(t, err)

	// Cached failure: clearing the injected error must not change the outcome
	delete(fsys.ReadErrors, "/scan/a.txt")
	_, err = entry.checksum(fsys)
	assert.Error(t, err)
}
