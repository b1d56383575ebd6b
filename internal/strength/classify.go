package strength

// Classes records which character classes occur in a password.
type Classes struct {
	Lower  bool `json:"lower"`
	Upper  bool `json:"upper"`
	Digit  bool `json:"digit"`
	Symbol bool `json:"symbol"`

	// SymbolCount is the number of symbol bytes, not distinct symbols.
	SymbolCount int `json:"symbolCount"`
}

// Count returns how many of the four classes are present.
func (c Classes) Count() int {
	n := 0
	for _, present := range []bool{c.Lower, c.Upper, c.Digit, c.Symbol} {
		if present {
			n++
		}
	}
	return n
}

// Classify scans s byte by byte. A byte is a symbol unless it is an ASCII
// letter or digit, so whitespace and every byte >= 0x80 are symbols.
func Classify(s string) Classes {
	var c Classes
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b >= 'a' && b <= 'z':
			c.Lower = true
		case b >= 'A' && b <= 'Z':
			c.Upper = true
		case b >= '0' && b <= '9':
			c.Digit = true
		default:
			c.Symbol = true
			c.SymbolCount++
		}
	}
	return c
}
