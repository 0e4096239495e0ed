package config

import (
	"strings"
)

const commentPrefix = "#"

// segment is a literal prefix followed by an optional placeholder group
type segment struct {
	literal      string
	alternatives []string
}

// Expand turns a single template line into every concrete identifier it describes.
// Groups are enumerated in mixed-radix order with the leftmost group varying slowest.
func Expand(line string) []string {
	if strings.HasPrefix(strings.TrimSpace(line), commentPrefix) {
		return []string{}
	}

	segments, tail := split(line)
	if len(segments) == 0 {
		return []string{line}
	}

	groups := make([][]string, len(segments))
	for i, s := range segments {
		groups[i] = s.alternatives
	}

	combos := Product(groups)
	result := make([]string, 0, len(combos))

	var b strings.Builder
	for _, combo := range combos {
		b.Reset()
		for i, s := range segments {
			b.WriteString(s.literal)
			b.WriteString(combo[i])
		}
		b.WriteString(tail)
		result = append(result, b.String())
	}

	return result
}

// ExpandAll expands every line of a template document in file order.
// Blank lines produce nothing.
func ExpandAll(text string) []string {
	var result []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		result = append(result, Expand(line)...)
	}

	return result
}

// Product enumerates the cartesian product of groups. For index n the
// alternative of group i is groups[i][(n / divisor_i) % len(groups[i])],
// where divisor_i is the product of the sizes of all groups after i.
// An empty group behaves as a single empty alternative.
func Product(groups [][]string) [][]string {
	sizes := make([]int, len(groups))
	total := 1
	for i, g := range groups {
		sizes[i] = max(len(g), 1)
		total *= sizes[i]
	}

	divisors := make([]int, len(groups))
	div := 1
	for i := len(groups) - 1; i >= 0; i-- {
		divisors[i] = div
		div *= sizes[i]
	}

	result := make([][]string, 0, total)
	for n := 0; n < total; n++ {
		combo := make([]string, len(groups))
		for i, g := range groups {
			if len(g) == 0 {
				continue
			}
			combo[i] = g[(n/divisors[i])%sizes[i]]
		}
		result = append(result, combo)
	}

	return result
}

// split cuts a line into literal+group segments and the trailing literal.
// An unterminated '{' ends the scan and stays part of the trailing literal.
func split(line string) ([]segment, string) {
	var segments []segment
	rest := line

	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		closing := strings.IndexByte(rest[open+1:], '}')
		if closing < 0 {
			break
		}
		closing += open + 1

		segments = append(segments, segment{
			literal:      rest[:open],
			alternatives: strings.Split(rest[open+1:closing], "|"),
		})
		rest = rest[closing+1:]
	}

	return segments, rest
}
