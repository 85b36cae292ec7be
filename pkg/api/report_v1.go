// pkg/api/report_v1.go
package api

// ReportSchemaV1 identifies the ReportV1 layout.
const ReportSchemaV1 = "barclash.report/v1"

// ClashV1 is the stable JSON/JSONL schema for one clashing pair.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ClashV1 struct {
	BarcodeA string `json:"barcode_a"`
	BarcodeB string `json:"barcode_b"`
	Distance int    `json:"distance"`
	SourceA  string `json:"source_a"`
	SourceB  string `json:"source_b"`
	IndexA   int    `json:"index_a"`
	IndexB   int    `json:"index_b"`
}

// WarningV1 is one rejected input line.
type WarningV1 struct {
	Line int    `json:"line"`
	Raw  string `json:"raw"`
	Pos  int    `json:"pos"`
	Base string `json:"base"`
}

// InputV1 describes one input set.
type InputV1 struct {
	Label     string      `json:"label"`
	Unique    int         `json:"unique"`
	Valid     int         `json:"valid"`
	Invalid   int         `json:"invalid"`
	Duplicate int         `json:"duplicate"`
	Blank     int         `json:"blank"`
	Warnings  []WarningV1 `json:"warnings,omitempty"`
}

// ReportV1 is the stable schema for a whole analysis.
type ReportV1 struct {
	Schema     string    `json:"schema"`
	RunID      string    `json:"run_id,omitempty"`
	Mode       string    `json:"mode"` // "single" | "cross"
	Threshold  int       `json:"threshold"`
	Inputs     []InputV1 `json:"inputs"`
	Compared   int       `json:"compared"`
	Skipped    int       `json:"skipped"`
	ClashCount int       `json:"clash_count"`
	Clashes    []ClashV1 `json:"clashes"`
}
