// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"barclash-core/clash"

	"barclash/internal/barcodeio"
	"barclash/internal/clibase"
	"barclash/internal/cliutil"
	"barclash/internal/config"
	"barclash/internal/writers"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Set1        string
	Set2        string
	Inline1     []string
	Inline2     []string
	InputFormat string

	// Analysis
	Threshold int
	Name1     string
	Name2     string

	// Output
	Output        string
	OutFile       string
	Header        bool // true unless --no-header
	Pretty        bool
	ClashExitCode int

	// Misc
	ConfigFile string
	Quiet      bool
	Version    bool
	Examples   bool

	// Set names the flags given explicitly on the command line (long names).
	Set map[string]bool
}

// Cross reports whether a second set was supplied.
func (o Options) Cross() bool { return o.Set2 != "" || len(o.Inline2) > 0 }

// Mode is the detection mode implied by the inputs.
func (o Options) Mode() clash.Mode {
	if o.Cross() {
		return clash.ModeCross
	}
	return clash.ModeSingle
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.Usage(fs, name)
	return fs
}

// aliases maps short flags onto their long names for Options.Set.
var aliases = map[string]string{
	"b": "barcode", "B": "barcode2", "1": "set1", "2": "set2",
	"t": "threshold", "o": "output", "q": "quiet", "v": "version",
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flag defaults are the built-in ones; see ApplyConfig for file/env values.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	cfg := config.Default()
	opt := Options{Set: map[string]bool{}}
	var help, noHeader bool

	// Input
	in1 := (*stringSlice)(&opt.Inline1)
	in2 := (*stringSlice)(&opt.Inline2)
	fs.Var(in1, "barcode", "inline barcode for set 1 (repeatable)")
	fs.Var(in1, "b", "alias of --barcode")
	fs.Var(in2, "barcode2", "inline barcode for set 2 (repeatable)")
	fs.Var(in2, "B", "alias of --barcode2")
	fs.StringVar(&opt.Set1, "set1", "", "set 1 source")
	fs.StringVar(&opt.Set1, "1", "", "alias of --set1")
	fs.StringVar(&opt.Set2, "set2", "", "set 2 source")
	fs.StringVar(&opt.Set2, "2", "", "alias of --set2")
	fs.StringVar(&opt.InputFormat, "input-format", cfg.InputFormat, "auto | lines | csv | fasta")

	// Analysis
	fs.IntVar(&opt.Threshold, "threshold", cfg.Threshold, "max Hamming distance counted as clash")
	fs.IntVar(&opt.Threshold, "t", cfg.Threshold, "alias of --threshold")
	fs.StringVar(&opt.Name1, "name1", cfg.Name1, "label for set 1")
	fs.StringVar(&opt.Name2, "name2", cfg.Name2, "label for set 2")

	// Output
	fs.StringVar(&opt.Output, "output", cfg.Output, "text | csv | json | jsonl")
	fs.StringVar(&opt.Output, "o", cfg.Output, "alias of --output")
	fs.StringVar(&opt.OutFile, "out", "-", "write results to FILE")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line")
	fs.BoolVar(&opt.Pretty, "pretty", false, "alignment block under each clash (text)")
	fs.IntVar(&opt.ClashExitCode, "clash-exit-code", 1, "exit code when clashes are found")

	// Misc
	fs.StringVar(&opt.ConfigFile, "config", "", "TOML defaults file")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings and summary")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&opt.Examples, "examples", false, "print usage examples and exit")
	fs.BoolVar(&help, "h", false, "show this help message")
	fs.BoolVar(&help, "help", false, "show this help message")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	posArgs = append(posArgs, fs.Args()...)
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if long, ok := aliases[name]; ok {
			name = long
		}
		opt.Set[name] = true
	})
	opt.Header = !noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return opt, err
		}
		posArgs = exp
	}
	if err := assignPositionals(&opt, posArgs); err != nil {
		return opt, err
	}
	return opt, Validate(opt)
}

// ApplyConfig copies cfg values into every setting not given as a flag.
func (o *Options) ApplyConfig(cfg config.Config) {
	if !o.Set["threshold"] {
		o.Threshold = cfg.Threshold
	}
	if !o.Set["name1"] {
		o.Name1 = cfg.Name1
	}
	if !o.Set["name2"] {
		o.Name2 = cfg.Name2
	}
	if !o.Set["output"] {
		o.Output = cfg.Output
	}
	if !o.Set["input-format"] {
		o.InputFormat = cfg.InputFormat
	}
}

// assignPositionals fills SET1 then SET2 from the remaining arguments.
func assignPositionals(opt *Options, pos []string) error {
	for _, p := range pos {
		switch {
		case opt.Set1 == "" && len(opt.Inline1) == 0:
			opt.Set1 = p
		case opt.Set2 == "" && len(opt.Inline2) == 0:
			opt.Set2 = p
		default:
			return fmt.Errorf("unexpected argument %q (at most two sets)", p)
		}
	}
	return nil
}

// Validate applies CLI invariants.
func Validate(o Options) error {
	switch {
	case o.Set1 != "" && len(o.Inline1) > 0:
		return errors.New("--set1 conflicts with --barcode")
	case o.Set2 != "" && len(o.Inline2) > 0:
		return errors.New("--set2 conflicts with --barcode2")
	case o.Set1 == "" && len(o.Inline1) == 0:
		return errors.New("provide a barcode file (SET1, --set1) or --barcode values")
	}
	if o.Set1 == "-" && o.Set2 == "-" {
		return errors.New("stdin ('-') can feed only one set")
	}
	if err := clash.CheckThreshold(o.Threshold); err != nil {
		return err
	}
	if _, err := barcodeio.ParseFormat(o.InputFormat); err != nil {
		return err
	}
	if !writers.Has(o.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", o.Output, strings.Join(writers.Formats(), " | "))
	}
	if strings.TrimSpace(o.Name1) == "" || (o.Cross() && strings.TrimSpace(o.Name2) == "") {
		return errors.New("set names must not be blank")
	}
	if o.ClashExitCode < 0 || o.ClashExitCode > 255 {
		return errors.New("--clash-exit-code must be between 0 and 255")
	}
	return nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
