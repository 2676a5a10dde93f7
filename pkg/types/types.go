// Package types defines the shared interfaces and result types used
// across the dupfinder pipeline.
package types

import (
	"io/fs"
	"sort"
)

// FS abstracts the filesystem operations the scanner and the purge
// executor need, so that the pipeline can run against fakes in tests.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	Remove(name string) error
}

// DuplicateGroup holds one keeper path plus the redundant copies that
// resolve to it. Redundant paths are kept in insertion order; the
// pipeline only ever appends in sorted-path order.
type DuplicateGroup struct {
	Keeper    string
	Redundant []string
}

// ScanResult maps keeper paths to their duplicate groups. Files with no
// duplicates are absent; there are no singleton groups.
type ScanResult struct {
	Groups map[string]*DuplicateGroup
}

// NewScanResult returns an empty result
func NewScanResult() *ScanResult {
	return &ScanResult{Groups: make(map[string]*DuplicateGroup)}
}

// Keepers returns the keeper paths in lexicographic order
func (r *ScanResult) Keepers() []string {
	keepers := make([]string, 0, len(r.Groups))
	for keeper := range r.Groups {
		keepers = append(keepers, keeper)
	}
	sort.Strings(keepers)
	return keepers
}

// TotalRedundant returns the number of files identified as redundant
// across all groups
func (r *ScanResult) TotalRedundant() int {
	total := 0
	for _, group := range r.Groups {
		total += len(group.Redundant)
	}
	return total
}

// Empty reports whether the scan found any duplicates at all
func (r *ScanResult) Empty() bool {
	return len(r.Groups) == 0
}

// RemovalFailure records a single failed deletion
type RemovalFailure struct {
	Path   string
	Reason string
}

// PurgeResult summarizes a delete-mode run. Removed is at most
// Identified; the difference is accounted for by Failures.
type PurgeResult struct {
	Identified int
	Removed    int
	Failures   []RemovalFailure
}
