// Package testutil provides test doubles shared across packages.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FakeFS is an in-memory types.FS implementation that can inject read
// and remove failures per path.
type FakeFS struct {
	Files        map[string][]byte
	Symlinks     map[string]string
	Dirs         map[string]bool
	ReadErrors   map[string]error
	RemoveErrors map[string]error

	// Removed records every successful Remove in call order
	Removed []string
}

// NewFakeFS creates an empty fake filesystem
func NewFakeFS() *FakeFS {
	return &FakeFS{
		Files:        make(map[string][]byte),
		Symlinks:     make(map[string]string),
		Dirs:         make(map[string]bool),
		ReadErrors:   make(map[string]error),
		RemoveErrors: make(map[string]error),
	}
}

// WriteFile stores a file, implicitly creating its parent directories
func (f *FakeFS) WriteFile(name string, data []byte) {
	f.Files[name] = data
	dir := filepath.Dir(name)
	for dir != "/" && dir != "." {
		f.Dirs[dir] = true
		dir = filepath.Dir(dir)
	}
}

func (f *FakeFS) Stat(name string) (fs.FileInfo, error) {
	return f.stat(name, true)
}

func (f *FakeFS) Lstat(name string) (fs.FileInfo, error) {
	return f.stat(name, false)
}

func (f *FakeFS) stat(name string, followLinks bool) (fs.FileInfo, error) {
	if target, ok := f.Symlinks[name]; ok {
		if !followLinks {
			return fakeInfo{name: filepath.Base(name), mode: fs.ModeSymlink}, nil
		}
		return f.stat(target, true)
	}
	if data, ok := f.Files[name]; ok {
		return fakeInfo{name: filepath.Base(name), size: int64(len(data)), mode: 0644}, nil
	}
	if f.Dirs[name] {
		return fakeInfo{name: filepath.Base(name), mode: fs.ModeDir | 0755, dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (f *FakeFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if !f.Dirs[name] {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}

	seen := make(map[string]fs.DirEntry)
	collect := func(path string, mode fs.FileMode, dir bool) {
		rel, err := filepath.Rel(name, path)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			return
		}
		first := strings.Split(rel, string(filepath.Separator))[0]
		if _, ok := seen[first]; ok {
			return
		}
		isDir := dir || first != rel
		entryMode := mode
		if isDir {
			entryMode = fs.ModeDir | 0755
		}
		seen[first] = fakeDirEntry{fakeInfo{name: first, mode: entryMode, dir: isDir}}
	}

	for path := range f.Files {
		collect(path, 0644, false)
	}
	for path := range f.Symlinks {
		collect(path, fs.ModeSymlink, false)
	}
	for path := range f.Dirs {
		collect(path, fs.ModeDir|0755, true)
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)

	entries := make([]fs.DirEntry, 0, len(names))
	for _, n := range names {
		entries = append(entries, seen[n])
	}
	return entries, nil
}

func (f *FakeFS) ReadFile(name string) ([]byte, error) {
	if err, ok := f.ReadErrors[name]; ok {
		return nil, err
	}
	if target, ok := f.Symlinks[name]; ok {
		return f.ReadFile(target)
	}
	data, ok := f.Files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return data, nil
}

func (f *FakeFS) Remove(name string) error {
	if err, ok := f.RemoveErrors[name]; ok {
		return err
	}
	if _, ok := f.Files[name]; !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: os.ErrNotExist}
	}
	delete(f.Files, name)
	f.Removed = append(f.Removed, name)
	return nil
}

type fakeInfo struct {
	name string
	size int64
	mode fs.FileMode
	dir  bool
}

func (i fakeInfo) Name() string       { return i.name }
func (i fakeInfo) Size() int64        { return i.size }
func (i fakeInfo) Mode() fs.FileMode  { return i.mode }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.dir }
func (i fakeInfo) Sys() interface{}   { return nil }

type fakeDirEntry struct {
	info fakeInfo
}

func (e fakeDirEntry) Name() string               { return e.info.name }
func (e fakeDirEntry) IsDir() bool                { return e.info.dir }
func (e fakeDirEntry) Type() fs.FileMode          { return e.info.mode.Type() }
func (e fakeDirEntry) Info() (fs.FileInfo, error) { return e.info, nil }
