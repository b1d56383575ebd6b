// Package main provides the entry point for the pwstrength CLI.
//
// pwstrength scores password strength offline. It estimates entropy, checks
// a common-password list, and flags weak patterns such as sequences, repeated
// characters, and well-known substrings.
//
// Usage:
//
//	pwstrength check [common-passwords-file]
//	pwstrength check --list <file>
//	pwstrength wordlist import <file>
//
// See --help for all available options.
package main

func main() {
	Execute()
}
