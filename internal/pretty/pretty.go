// Package pretty draws ASCII alignment blocks for clashing barcode pairs.
package pretty

import (
	"fmt"
	"strings"

	"barclash-core/clash"
)

// Options control the ASCII rendering.
type Options struct {
	ExactGlyph    string // default "|"
	MismatchGlyph string // default "x"
	Prefix        string // default "# "
}

// DefaultOptions keeps the text output greppable: every block line starts
// with "# " so `grep -v '^#'` recovers the plain TSV.
var DefaultOptions = Options{
	ExactGlyph:    "|",
	MismatchGlyph: "x",
	Prefix:        "# ",
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// MatchLine marks each position of a and b with the exact or mismatch glyph.
// Positions past the shorter string count as mismatches.
func MatchLine(a, b string, opt Options) string {
	exact := orDefault(opt.ExactGlyph, DefaultOptions.ExactGlyph)
	mism := orDefault(opt.MismatchGlyph, DefaultOptions.MismatchGlyph)
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i < len(a) && i < len(b) && a[i] == b[i] {
			sb.WriteString(exact)
		} else {
			sb.WriteString(mism)
		}
	}
	return sb.String()
}

// RenderRecordWith returns a three-line block:
//
//	# AAAA  Set 1 #0
//	# |||x  distance 1
//	# AAAT  Set 1 #1
func RenderRecordWith(r clash.Record, opt Options) string {
	prefix := opt.Prefix
	if prefix == "" {
		prefix = DefaultOptions.Prefix
	}
	a, b := string(r.A), string(r.B)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%s  %s #%d\n", prefix, a, r.SourceA, r.IndexA)
	fmt.Fprintf(&sb, "%s%s  distance %d\n", prefix, MatchLine(a, b, opt), r.Distance)
	fmt.Fprintf(&sb, "%s%s  %s #%d\n", prefix, b, r.SourceB, r.IndexB)
	return sb.String()
}

// RenderRecord renders with DefaultOptions.
func RenderRecord(r clash.Record) string { return RenderRecordWith(r, DefaultOptions) }
