package batch

import (
	"bufio"
	"io"
)

// maxLineSize bounds a single list line.
const maxLineSize = 1024 * 1024

// Item is one password read from a list file.
type Item struct {
	// Line is the 1-based line number in the source.
	Line int

	Password string
}

// ReadList reads one password per line. The line terminator and at most one
// "\r" before it are removed; other whitespace is part of the password.
// Empty lines are skipped but still counted.
func ReadList(r io.Reader) ([]Item, error) {
	var items []Item

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		if pw := scanner.Text(); pw != "" {
			items = append(items, Item{Line: line, Password: pw})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Passwords returns the passwords of items in order.
func Passwords(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Password
	}
	return out
}
