package wordlist

import (
	"github.com/bits-and-blooms/bloom/v3"
)

// falsePositiveRate is the target rate of the bloom prefilter.
const falsePositiveRate = 0.001

// Set is an immutable collection of normalized common passwords.
//
// A nil *Set is valid and behaves as an empty set.
//
// Design decision: the bloom filter sits in front of the map because batch
// runs check every candidate against lists with millions of entries, and
// nearly all candidates miss. The filter only ever answers "maybe" or "no";
// membership itself is always decided by the map, so a false positive costs
// one map lookup and never a wrong result.
type Set struct {
	words  map[string]struct{}
	filter *bloom.BloomFilter
}

// NewSet builds a Set from raw entries. Entries are normalized, empty entries
// are dropped and duplicates collapse.
func NewSet(words ...string) *Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		if n := Normalize(w); n != "" {
			m[n] = struct{}{}
		}
	}
	return newSetFromNormalized(m)
}

// newSetFromNormalized takes ownership of m, whose keys must already be normalized.
func newSetFromNormalized(m map[string]struct{}) *Set {
	s := &Set{words: m}
	if len(m) == 0 {
		return s
	}

	s.filter = bloom.NewWithEstimates(uint(len(m)), falsePositiveRate)
	for w := range m {
		s.filter.AddString(w)
	}
	return s
}

// Contains reports whether the candidate, after ASCII lowercasing, is an exact
// member of the set. Surrounding whitespace in the candidate is significant.
func (s *Set) Contains(candidate string) bool {
	if s.Empty() {
		return false
	}

	lower := Lower(candidate)
	if !s.filter.TestString(lower) {
		return false
	}
	_, ok := s.words[lower]
	return ok
}

// Len returns the number of distinct entries.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Empty reports whether the set has no entries.
func (s *Set) Empty() bool {
	return s.Len() == 0
}

// Words returns the entries in unspecified order. The returned slice is a copy.
func (s *Set) Words() []string {
	if s.Empty() {
		return nil
	}
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	return out
}
