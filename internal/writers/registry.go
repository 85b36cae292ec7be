// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"

	"barclash-core/clash"
)

// Options carries presentation switches shared by all formats.
type Options struct {
	Header bool
	Pretty bool   // text only; alignment block under each row
	RunID  string // JSON only; empty omits it
}

// WriteFunc serializes one result.
type WriteFunc func(w io.Writer, res clash.Result, opt Options) error

// Writer registry (format → handler). Formats register in init() blocks.
var reportWriters = map[string]WriteFunc{}

// Register adds or replaces the writer for format (last wins).
func Register(format string, fn WriteFunc) { reportWriters[format] = fn }

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(reportWriters))
	for f := range reportWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Has reports whether a writer is registered for format.
func Has(format string) bool {
	_, ok := reportWriters[format]
	return ok
}

// Write dispatches to the registered writer. Broken pipes are not errors.
func Write(format string, w io.Writer, res clash.Result, opt Options) error {
	fn, ok := reportWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	if err := fn(w, res, opt); err != nil && !IsBrokenPipe(err) {
		return err
	}
	return nil
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
