// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"barclash-core/barcode"
	"barclash-core/clash"

	"barclash/internal/barcodeio"
	"barclash/internal/cmdutil"
	"barclash/internal/writers"

	"github.com/shenwei356/xopen"
)

// Source is one barcode set: a path/URI, or inline values when Path is empty.
type Source struct {
	Label  string
	Path   string
	Inline []string
}

type Options struct {
	Format    barcodeio.Format
	Threshold int
	Output    string // writers format name
	OutFile   string // "" or "-" = stdout
	Header    bool
	Pretty    bool
	RunID     string

	Quiet         bool
	ClashExitCode int
}

// Load reads and normalizes one source.
func Load(ctx context.Context, r *barcodeio.Reader, f barcodeio.Format, s Source) (clash.Input, error) {
	var lines []barcode.Line
	if s.Path != "" {
		var err error
		if lines, err = r.Read(ctx, s.Path, f); err != nil {
			return clash.Input{}, err
		}
	} else {
		lines = barcodeio.Inline(s.Inline)
	}
	set, sum := barcode.NormalizeLines(lines)
	return clash.Input{Label: s.Label, Set: set, Summary: sum}, nil
}

// Run loads the sources (one or two), detects clashes and writes the result.
// Exit codes: 0 no clash, o.ClashExitCode on clashes, 2 input/configuration
// errors, 3 write errors, 130 cancelled.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	r *barcodeio.Reader,
	o Options,
	sources ...Source,
) int {
	if r == nil {
		r = &barcodeio.Reader{}
	}
	if len(sources) == 0 || len(sources) > 2 {
		fmt.Fprintf(stderr, "error: want one or two barcode sets, got %d\n", len(sources))
		return 2
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	inputs := make([]clash.Input, 0, len(sources))
	for _, s := range sources {
		in, err := Load(ctx, r, o.Format, s)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return 130
			}
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 2
		}
		inputs = append(inputs, in)
	}

	p := clash.Params{Mode: clash.ModeSingle, Threshold: o.Threshold}
	var second *clash.Input
	if len(inputs) == 2 {
		p.Mode = clash.ModeCross
		second = &inputs[1]
	}

	res, err := clash.DetectContext(ctx, p, inputs[0], second)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		// Still show why a set came out empty.
		cmdutil.ReportInputs(stderr, o.Quiet, inputStats(inputs))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	cmdutil.ReportInputs(stderr, o.Quiet, res.Inputs)
	cmdutil.ReportSummary(stderr, o.Quiet, res)

	if code := write(stdout, stderr, o, res); code != 0 {
		return code
	}
	if res.HasClashes() {
		return o.ClashExitCode
	}
	return 0
}

func write(stdout, stderr io.Writer, o Options, res clash.Result) int {
	wopt := writers.Options{Header: o.Header, Pretty: o.Pretty, RunID: o.RunID}

	if o.OutFile == "" || o.OutFile == "-" {
		outw := bufio.NewWriter(stdout)
		if err := writers.Write(o.Output, outw, res, wopt); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	fh, err := xopen.Wopen(o.OutFile)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s: %v\n", o.OutFile, err)
		return 3
	}
	werr := writers.Write(o.Output, fh, res, wopt)
	if cerr := fh.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		fmt.Fprintf(stderr, "error: %s: %v\n", o.OutFile, werr)
		return 3
	}
	return 0
}

// inputStats mirrors the Result bookkeeping for inputs that never reached
// a successful detection.
func inputStats(inputs []clash.Input) []clash.InputStats {
	out := make([]clash.InputStats, 0, len(inputs))
	for i, in := range inputs {
		label := in.Label
		if label == "" {
			label = fmt.Sprintf("Set %d", i+1)
		}
		out = append(out, clash.InputStats{
			Label:     label,
			Unique:    in.Set.Len(),
			Valid:     in.Summary.Valid,
			Invalid:   in.Summary.Invalid,
			Duplicate: in.Summary.Duplicate,
			Blank:     in.Summary.Blank,
			Lines:     in.Summary.Lines(),
			Lengths:   in.Set.Lengths(),
			Warnings:  in.Summary.Warnings,
		})
	}
	return out
}
