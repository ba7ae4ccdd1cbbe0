// Package filesystem provides implementations of the types.FS interface:
// a direct OS-backed one for production use, and an afero adapter so
// tests can run against an in-memory filesystem.
package filesystem
