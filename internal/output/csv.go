package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"barclash-core/clash"
)

// CSVHeader returns the export header for a result. Single-set results use
// "Barcode 1,Barcode 2"; cross-set results name the columns after the inputs.
func CSVHeader(res clash.Result) []string {
	if res.Mode == clash.ModeCross && len(res.Inputs) == 2 {
		return []string{
			res.Inputs[0].Label + " Barcode",
			res.Inputs[1].Label + " Barcode",
			CSVDistance,
		}
	}
	return []string{CSVBarcode1, CSVBarcode2, CSVDistance}
}

// WriteCSV writes the clash table as CSV.
func WriteCSV(w io.Writer, res clash.Result, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(CSVHeader(res)); err != nil {
			return err
		}
	}
	for _, r := range res.Records {
		if err := cw.Write([]string{string(r.A), string(r.B), strconv.Itoa(r.Distance)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
