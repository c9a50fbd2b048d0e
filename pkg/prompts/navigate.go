package prompts

import (
	"strconv"
	"strings"
)

// Target is a navigation destination: either the registration screen or a
// prompt position.
type Target struct {
	Registration bool
	Index        int
}

// Navigation describes the moves offered from a prompt position. The
// sequence is linear and does not wrap.
type Navigation struct {
	Current  int
	Total    int
	Previous Target
	Next     Target
	HasNext  bool
}

// Navigate computes the previous and next targets for current. Previous from
// the first prompt leads back to registration; next is only offered before the
// last prompt.
func Navigate(current, total int) Navigation {
	nav := Navigation{Current: current, Total: total}
	if current > 1 {
		nav.Previous = Target{Index: current - 1}
	} else {
		nav.Previous = Target{Registration: true}
	}
	if current < total {
		nav.HasNext = true
		nav.Next = Target{Index: current + 1}
	}
	return nav
}

// ParseIndex converts a route segment into a prompt position using the lenient
// rules of browser parseInt: optional leading whitespace and sign, then the
// longest run of decimal digits. Unparsable input yields 0, which Render
// resolves to the first prompt.
func ParseIndex(raw string) int {
	s := strings.TrimLeft(raw, " \t\n\v\f\r")
	sign := 1
	switch {
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Overflow: the position is out of range either way.
		return 0
	}
	return sign * n
}

// FileLabel returns the zero-padded file name the viewer shows for a prompt,
// for example prompt-03.txt.
func FileLabel(idx int) string {
	return "prompt-" + Pad(idx, 2) + ".txt"
}

// Pad left-pads the decimal form of n with zeros to width.
func Pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
