/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package common

import (
	"strings"
)

// SingleLine flattens a server message for one-line display: outer
// whitespace is trimmed, line breaks become " | " and runs of whitespace
// collapse to a single space
func SingleLine(s string) string {
	if s == "" {
		return s
	}

	s = strings.NewReplacer("\r\n", " | ", "\n", " | ", "\r", " | ").Replace(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens s to at most n runes, marking the cut with "..."
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
