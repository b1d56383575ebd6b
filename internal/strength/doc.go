// Package strength implements the password strength analyzer.
//
// Analysis is a single pass over the candidate's bytes:
//
//  1. Classify reports which character classes occur.
//  2. PoolEntropy and ShannonEntropy give two numeric estimates in bits.
//  3. HasSequence, HasRepeatedRun and CommonSubstring detect weak patterns.
//  4. Analyzer.Analyze combines everything into a score in [0, 100] with an
//     ordered list of reasons.
//
// All functions are pure. An Analyzer holds only read-only state, so a single
// instance may serve any number of goroutines.
//
// # Known limitations
//
// Pool entropy credits the full alphabet of every class that appears at least
// once. "aaaaaaa!" is credited with 58 possible characters per position even
// though it uses two. Scores depend on this; do not switch to observed
// character counts.
//
// Character classes are ASCII only. Every byte outside [A-Za-z0-9], including
// each byte of a multi-byte UTF-8 sequence, counts as a symbol, and length is
// measured in bytes.
package strength
