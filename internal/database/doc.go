// Package database provides the SQLite-backed wordlist cache.
//
// Importing a large common-password list once and loading it by name later
// avoids re-parsing the text file on every run. The cache stores wordlists
// only. Analysis results are never written to it.
//
// The driver is modernc.org/sqlite, a CGO-free SQLite implementation, so the
// binary cross-compiles without a C toolchain.
package database
