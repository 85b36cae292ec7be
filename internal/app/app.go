// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"barclash/internal/appcore"
	"barclash/internal/barcodeio"
	"barclash/internal/cli"
	"barclash/internal/clibase"
	"barclash/internal/config"
	"barclash/internal/version"
	"barclash/internal/writers"
)

const name = "barclash"

// flush finishes a help/version/examples print. Broken pipes are fine.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return code
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flush(outw, stderr, 0)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			clibase.PrintExamples(outw, name, clibase.BarclashExamples)
			return flush(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(outw, stderr, 0)
	}

	if err := config.LoadDotEnv(); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	cfg, err := config.Resolve(opts.ConfigFile, os.Getenv)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	opts.ApplyConfig(cfg)
	if err := cli.Validate(opts); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	format, _ := barcodeio.ParseFormat(opts.InputFormat)

	sources := []appcore.Source{{Label: opts.Name1, Path: opts.Set1, Inline: opts.Inline1}}
	if opts.Cross() {
		sources = append(sources, appcore.Source{Label: opts.Name2, Path: opts.Set2, Inline: opts.Inline2})
	}

	coreOpts := appcore.Options{
		Format:        format,
		Threshold:     opts.Threshold,
		Output:        opts.Output,
		OutFile:       opts.OutFile,
		Header:        opts.Header,
		Pretty:        opts.Pretty,
		Quiet:         opts.Quiet,
		ClashExitCode: opts.ClashExitCode,
	}
	reader := &barcodeio.Reader{Getenv: os.Getenv}
	return appcore.Run(parent, stdout, stderr, reader, coreOpts, sources...)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
