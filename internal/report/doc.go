// Package report renders analysis results for terminals, tools, and documents.
//
// This package contains writers for different output formats:
//   - SimpleWriter: the plain terminal layout
//   - JSONWriter: one JSON object per result for tool integration
//   - MarkdownWriter: tables and GitHub alerts for sharing
//
// Writers implement the Writer interface and can be combined with
// MultiWriter.
package report
