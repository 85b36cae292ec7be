package cmdutil

import (
	"io"
	"strconv"
	"strings"

	"barclash-core/clash"
)

// MaxWarnings is how many invalid lines are listed per set before the rest
// are only counted.
const MaxWarnings = 5

// ReportInputs writes the rejected lines and the per-set counts to dst.
// Nothing is written when quiet.
func ReportInputs(dst io.Writer, quiet bool, inputs []clash.InputStats) {
	if quiet {
		return
	}
	for _, in := range inputs {
		for i, w := range in.Warnings {
			if i == MaxWarnings {
				Warnf(dst, false, "%s: ... and %d more invalid line(s)", in.Label, len(in.Warnings)-MaxWarnings)
				break
			}
			Warnf(dst, false, "%s: line %d: invalid base %q at position %d in %q", in.Label, w.Line, w.Base, w.Pos, w.Raw)
		}
		if len(in.Lengths) > 1 {
			Warnf(dst, false, "%s: mixed barcode lengths %s; pairs of unequal length are not compared", in.Label, joinInts(in.Lengths))
		}
		Infof(dst, false, "%s: %d unique barcode(s) (%d valid, %d duplicate, %d invalid, %d blank line(s)) from %d line(s)",
			in.Label, in.Unique, in.Valid, in.Duplicate, in.Invalid, in.Blank, in.Lines)
	}
}

// ReportSummary writes the one-line outcome of res to dst unless quiet.
func ReportSummary(dst io.Writer, quiet bool, res clash.Result) {
	Infof(dst, quiet, "%s mode, threshold %d: %d clash(es) in %d comparison(s), %d pair(s) of unequal length skipped",
		res.Mode, res.Threshold, len(res.Records), res.Compared, res.Skipped)
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
