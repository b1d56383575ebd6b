// Package batch analyzes many passwords concurrently.
//
// A Processor fans analyses out over a bounded number of goroutines with
// errgroup and returns results in input order. ReadList turns a list file
// into numbered items so results can be labeled by line.
//
// Design decision: the shared Analyzer and its common-password set are
// immutable, so workers need no locking. The concurrency limit bounds memory
// for very large lists rather than CPU contention.
package batch
