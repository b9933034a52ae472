// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import "strings"

// NormalizeText splits s on line boundaries, trims every line, drops the
// empty ones, and joins the rest with "\n". It is idempotent.
func NormalizeText(s string) string {
	lines := strings.FieldsFunc(s, isLineBreak)
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// isLineBreak matches the characters treated as line boundaries, including
// the Unicode line and paragraph separators.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
