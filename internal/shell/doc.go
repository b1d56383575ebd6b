// Package shell implements the interactive prompt: read a password, print its
// analysis, repeat until end of input.
//
// The loop is synchronous. Each read runs on a helper goroutine only so that
// cancellation (Ctrl-C) ends the session while a read is still blocked.
//
// Design decision: cancellation is a normal exit, like end of input. The
// session prints its farewell and Run returns nil, so interrupting the prompt
// does not surface as a command failure.
package shell
