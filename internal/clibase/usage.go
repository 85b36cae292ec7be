// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"

	"barclash/internal/version"
)

// Usage installs the grouped help text on fs. Defaults are read back from
// the registered flags so the help never drifts from ParseArgs.
func Usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – DNA barcode clash checker\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s [flags] SET1 [SET2]\n", name)
		fmt.Fprintln(out, "  One set: pairs inside SET1 are compared.")
		fmt.Fprintln(out, "  Two sets: every SET1 barcode is compared with every SET2 barcode.")
		fmt.Fprintln(out, "  Positionals fill the first set not already given by flags, so")
		fmt.Fprintln(out, "  '-b SEQ FILE' compares the inline barcodes against FILE.")

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -b, --barcode SEQ           Inline barcode for set 1 (repeatable)")
		fmt.Fprintln(out, "  -B, --barcode2 SEQ          Inline barcode for set 2 (repeatable)")
		fmt.Fprintln(out, "  -1, --set1 FILE             Set 1 source: path, '-' for STDIN, s3://bucket/key")
		fmt.Fprintln(out, "  -2, --set2 FILE             Set 2 source (enables cross-set mode)")
		fmt.Fprintf(out, "      --input-format string   auto | lines | csv | fasta [%s]\n", def("input-format"))

		fmt.Fprintln(out, "\nAnalysis:")
		fmt.Fprintf(out, "  -t, --threshold int         Max Hamming distance counted as clash (0-10) [%s]\n", def("threshold"))
		fmt.Fprintf(out, "      --name1 string          Label for set 1 [%s]\n", def("name1"))
		fmt.Fprintf(out, "      --name2 string          Label for set 2 [%s]\n", def("name2"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         text | csv | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --out FILE              Write results to FILE (.gz compresses) [%s]\n", def("out"))
		fmt.Fprintf(out, "      --no-header             Suppress header line (text/csv) [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --pretty                Alignment block under each clash (text) [%s]\n", def("pretty"))
		fmt.Fprintf(out, "      --clash-exit-code int   Exit code when clashes are found [%s]\n", def("clash-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      --config FILE           TOML defaults file (or $BARCLASH_CONFIG)")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress warnings and summary [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
