// Package filesystem provides the OS-backed implementation of types.FS.
//
// The scanner and purge executor only ever touch the filesystem through
// the types.FS interface; tests substitute in-memory fakes where they
// need to inject read or remove failures.
package filesystem
