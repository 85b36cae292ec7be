// internal/output/json.go
package output

import (
	"io"

	"barclash-core/clash"

	"barclash/internal/jsonutil"
	"barclash/pkg/api"
)

// ToAPIClash converts a domain Record to the stable wire schema (v1).
func ToAPIClash(r clash.Record) api.ClashV1 {
	return api.ClashV1{
		BarcodeA: string(r.A),
		BarcodeB: string(r.B),
		Distance: r.Distance,
		SourceA:  r.SourceA,
		SourceB:  r.SourceB,
		IndexA:   r.IndexA,
		IndexB:   r.IndexB,
	}
}

func toAPIInput(in clash.InputStats) api.InputV1 {
	v := api.InputV1{
		Label:     in.Label,
		Unique:    in.Unique,
		Valid:     in.Valid,
		Invalid:   in.Invalid,
		Duplicate: in.Duplicate,
		Blank:     in.Blank,
	}
	for _, w := range in.Warnings {
		v.Warnings = append(v.Warnings, api.WarningV1{Line: w.Line, Raw: w.Raw, Pos: w.Pos, Base: string(w.Base)})
	}
	return v
}

// ToAPIReport converts a whole Result. runID may be empty.
func ToAPIReport(res clash.Result, runID string) api.ReportV1 {
	rep := api.ReportV1{
		Schema:     api.ReportSchemaV1,
		RunID:      runID,
		Mode:       res.Mode.String(),
		Threshold:  res.Threshold,
		Inputs:     make([]api.InputV1, 0, len(res.Inputs)),
		Compared:   res.Compared,
		Skipped:    res.Skipped,
		ClashCount: len(res.Records),
		Clashes:    make([]api.ClashV1, 0, len(res.Records)),
	}
	for _, in := range res.Inputs {
		rep.Inputs = append(rep.Inputs, toAPIInput(in))
	}
	for _, r := range res.Records {
		rep.Clashes = append(rep.Clashes, ToAPIClash(r))
	}
	return rep
}

// WriteJSON writes a single pretty-indented v1 report.
func WriteJSON(w io.Writer, rep api.ReportV1) error {
	return jsonutil.EncodePretty(w, rep)
}
