package barcode

import (
	"errors"
	"strings"
)

// Line is one nominal barcode together with the number reported in warnings.
type Line struct {
	Number int
	Text   string
}

// Summary accounts for every input line handed to the normalizer.
// Valid counts accepted lines including duplicates, so the resulting Set has
// Valid-Duplicate members.
type Summary struct {
	Valid     int
	Invalid   int
	Duplicate int
	Blank     int
	Warnings  []InvalidSequenceWarning
}

// Lines returns the number of lines the summary covers.
func (s Summary) Lines() int { return s.Valid + s.Invalid + s.Blank }

// Normalize numbers lines from 1 and normalizes them.
func Normalize(lines []string) (Set, Summary) {
	numbered := make([]Line, len(lines))
	for i, l := range lines {
		numbered[i] = Line{Number: i + 1, Text: l}
	}
	return NormalizeLines(numbered)
}

// NormalizeLines trims, uppercases, validates and de-duplicates lines.
// It never fails: blank lines are skipped, invalid lines are recorded as
// warnings, and all lines are processed before returning.
func NormalizeLines(lines []Line) (Set, Summary) {
	set := newSet(len(lines))
	var sum Summary
	for _, l := range lines {
		b, err := Parse(l.Text)
		if err != nil {
			if errors.Is(err, ErrEmpty) {
				sum.Blank++
				continue
			}
			var w *InvalidSequenceWarning
			if errors.As(err, &w) {
				w.Line = l.Number
				sum.Warnings = append(sum.Warnings, *w)
			}
			sum.Invalid++
			continue
		}
		sum.Valid++
		if !set.add(b) {
			sum.Duplicate++
		}
	}
	return set, sum
}

// SplitLines splits text on \n, \r\n or a bare \r.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	out := strings.Split(text, "\n")
	// A trailing newline does not start another line.
	if n := len(out); n > 0 && out[n-1] == "" {
		out = out[:n-1]
	}
	return out
}
