// Package wordlist provides the common-password set consulted by the analyzer.
//
// A Set is built once, before any analysis starts, and is never mutated
// afterwards. Every entry is normalized the same way: surrounding ASCII
// whitespace is trimmed and ASCII letters are lowercased. Bytes outside the
// ASCII range pass through unchanged, so a UTF-8 entry only matches a
// candidate that spells it with the same bytes.
//
// # Loading
//
//	set := wordlist.Load("/usr/share/wordlists/common.txt", logger)
//
// A missing or unreadable file is not an error. Load logs a warning and returns
// an empty set, which the analyzer treats as "no common-password check".
package wordlist
