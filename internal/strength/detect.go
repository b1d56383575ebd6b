package strength

import (
	"strings"

	"github.com/nao1215/pwstrength/internal/wordlist"
)

// Default detector window sizes.
const (
	DefaultSequenceWindow = 4
	DefaultRepeatRun      = 4
)

// commonSubstrings is checked in order; the first hit wins, so "12345" is
// reported for "123456789".
var commonSubstrings = []string{
	"password",
	"qwerty",
	"admin",
	"welcome",
	"12345",
	"iloveyou",
	"123456789",
}

// CommonSubstrings returns a copy of the built-in substring list in match order.
func CommonSubstrings() []string {
	out := make([]string, len(commonSubstrings))
	copy(out, commonSubstrings)
	return out
}

// HasSequence reports whether s contains window consecutive bytes that each
// step by exactly +1 or exactly -1 from the previous byte. Steps use uint8
// arithmetic, so 0xff followed by 0x00 is ascending.
func HasSequence(s string, window int) bool {
	if len(s) < window {
		return false
	}

	for i := 0; i+window <= len(s); i++ {
		asc, desc := true, true
		for j := 1; j < window; j++ {
			prev, cur := s[i+j-1], s[i+j]
			if cur != prev+1 {
				asc = false
			}
			if cur != prev-1 {
				desc = false
			}
		}
		if asc || desc {
			return true
		}
	}
	return false
}

// HasRepeatedRun reports whether s contains run copies of the same byte in a row.
func HasRepeatedRun(s string, run int) bool {
	if len(s) < run {
		return false
	}

	for i := 0; i+run <= len(s); i++ {
		same := true
		for j := 1; j < run; j++ {
			if s[i+j] != s[i+j-1] {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}

// CommonSubstring returns the first built-in weak substring contained in s,
// compared after ASCII lowercasing.
func CommonSubstring(s string) (string, bool) {
	lower := wordlist.Lower(s)
	for _, sub := range commonSubstrings {
		if strings.Contains(lower, sub) {
			return sub, true
		}
	}
	return "", false
}
