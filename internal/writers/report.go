package writers

import (
	"io"

	"barclash-core/clash"

	"barclash/internal/jsonlutil"
	"barclash/internal/output"
	"barclash/pkg/api"
)

func init() {
	Register(output.FormatText, func(w io.Writer, res clash.Result, opt Options) error {
		return output.WriteText(w, res.Records, opt.Header, opt.Pretty)
	})
	Register(output.FormatCSV, func(w io.Writer, res clash.Result, opt Options) error {
		return output.WriteCSV(w, res, opt.Header)
	})
	Register(output.FormatJSON, func(w io.Writer, res clash.Result, opt Options) error {
		return output.WriteJSON(w, output.ToAPIReport(res, opt.RunID))
	})
	Register(output.FormatJSONL, func(w io.Writer, res clash.Result, _ Options) error {
		in, done := StartClashJSONLWriter(w, 0)
		for _, r := range res.Records {
			in <- r
		}
		close(in)
		return <-done
	})
}

// StartClashJSONLWriter streams each clash.Record as one JSON line (v1).
func StartClashJSONLWriter(out io.Writer, bufSize int) (chan<- clash.Record, <-chan error) {
	return jsonlutil.Start[clash.Record, api.ClashV1](out, bufSize, output.ToAPIClash, IsBrokenPipe)
}
