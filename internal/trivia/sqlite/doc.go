// Package sqlite is the file-backed catalog store. The schema is managed by
// golang-migrate migrations embedded in the binary.
package sqlite
