package wordlist

import "strings"

// asciiSpace is the whitespace set trimmed from wordlist lines.
// It mirrors the C locale isspace set rather than unicode.IsSpace.
const asciiSpace = " \t\n\v\f\r"

// Lower folds ASCII uppercase letters to lowercase and leaves every other
// byte untouched.
//
// Design decision: folding is ASCII only, not strings.ToLower or
// golang.org/x/text/cases. Unicode folding rewrites multi-byte UTF-8 sequences
// and replaces invalid bytes, which would make list matching and scores depend
// on the encoding of the input. Byte-exact folding keeps a candidate and a
// list entry comparable whatever bytes they contain.
func Lower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			return lowerFrom(s, i)
		}
	}
	return s
}

// lowerFrom lowers s starting at the first uppercase byte found at index i.
func lowerFrom(s string, i int) string {
	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Normalize returns the canonical form of a wordlist entry: surrounding ASCII
// whitespace removed and ASCII letters lowercased. An empty result means the
// line carries no entry.
func Normalize(line string) string {
	return Lower(strings.Trim(line, asciiSpace))
}
