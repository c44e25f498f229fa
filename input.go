package aoc

import (
	"strings"

	"tailscale.com/util/deephash"
)

// Lines splits input into lines. A single trailing newline is allowed;
// empty input and blank lines are Parse errors.
func Lines(input string) ([]string, error) {
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil, Parsef("empty input")
	}
	lines := strings.Split(input, "\n")
	for i, l := range lines {
		if l == "" {
			return nil, AtLine(i+1, Parsef("unexpected blank line"))
		}
	}
	return lines, nil
}

// Blocks splits input on blank lines, after dropping a single trailing
// newline. Each block is returned without its separator.
func Blocks(input string) []string {
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n\n")
}

// Fields splits s on single spaces and checks that there are exactly n
// fields.
func Fields(s string, n int) ([]string, error) {
	f := strings.Split(s, " ")
	if len(f) != n {
		return nil, Parsef("want %d fields, got %d in %q", n, len(f), s)
	}
	return f, nil
}

// Cut is strings.Cut that reports a Parse error when sep is missing.
func Cut(s, sep string) (before, after string, err error) {
	before, after, ok := strings.Cut(s, sep)
	if !ok {
		return "", "", Parsef("missing %q in %q", sep, s)
	}
	return before, after, nil
}

// TrimPrefix removes prefix from s, reporting a Parse error when s
// doesn't start with it.
func TrimPrefix(s, prefix string) (string, error) {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return "", Parsef("want prefix %q in %q", prefix, s)
	}
	return s1, nil
}

// Fingerprint returns a stable hash of input for logging.
func Fingerprint(input string) string {
	return deephash.Hash(&input).String()
}
