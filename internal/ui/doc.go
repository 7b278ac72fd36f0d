// Package ui provides semantic text formatting for CLI output.
//
// Formatters carry meaning (Path, Key, Success) rather than raw colors, so
// output degrades gracefully when color is disabled: each formatter has a
// plain-text fallback decoration. Color is suppressed when NO_COLOR is set
// or when fatih/color detects a non-terminal.
package ui
