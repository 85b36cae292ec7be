// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints a small quickstart header and body, followed by a
// one-line tip to discover full help.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	if body != nil {
		body(out)
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}

// BarclashExamples is the quickstart body of the barclash command.
func BarclashExamples(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Check one barcode list for pairs within 1 mismatch:")
	_, _ = fmt.Fprintln(w, "  barclash i7.txt")
	_, _ = fmt.Fprintln(w, "\nCompare i7 against i5 barcodes, exact matches only, CSV export:")
	_, _ = fmt.Fprintln(w, "  barclash -t 0 --name1 i7 --name2 i5 -o csv --out clashes.csv i7.txt i5.txt")
	_, _ = fmt.Fprintln(w, "\nInline barcodes:")
	_, _ = fmt.Fprintln(w, "  barclash -b ACGTACGT -b ACGTACGA -b TTTTGGGG")
	_, _ = fmt.Fprintln(w, "\nBarcodes from a gzipped FASTA on S3, JSON report:")
	_, _ = fmt.Fprintln(w, "  barclash -o json s3://runs/plate7/barcodes.fa.gz")
}
