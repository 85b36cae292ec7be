// internal/output/text.go
package output

import (
	"bufio"
	"fmt"
	"io"

	"barclash-core/clash"

	"barclash/internal/pretty"
)

// FormatRowTSV returns one TSV row (no trailing newline).
func FormatRowTSV(r clash.Record) string {
	return fmt.Sprintf("%s\t%s\t%d\t%s\t%s\t%d\t%d",
		r.A, r.B, r.Distance, r.SourceA, r.SourceB, r.IndexA, r.IndexB)
}

// WriteText prints an optional header and one TSV line per record. With
// blocks set, each row is followed by its "# " alignment block.
func WriteText(w io.Writer, records []clash.Record, header, blocks bool) error {
	bw := bufio.NewWriter(w)
	if header {
		if _, err := fmt.Fprintln(bw, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range records {
		if _, err := fmt.Fprintln(bw, FormatRowTSV(r)); err != nil {
			return err
		}
		if blocks {
			if _, err := fmt.Fprint(bw, pretty.RenderRecord(r)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
