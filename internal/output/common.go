package output

// Output format names accepted by --output.
const (
	FormatText  = "text"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "barcode_a\tbarcode_b\tdistance\tsource_a\tsource_b\tindex_a\tindex_b"

// CSV export column names. In cross mode the barcode columns are
// "<label> Barcode" instead.
const (
	CSVBarcode1 = "Barcode 1"
	CSVBarcode2 = "Barcode 2"
	CSVDistance = "Hamming Distance"
)
