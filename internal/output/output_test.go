package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"barclash-core/barcode"
	"barclash-core/clash"

	"barclash/pkg/api"
)

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatCSV != "csv" || FormatJSON != "json" || FormatJSONL != "jsonl" {
		t.Fatalf("output format constants changed")
	}
}

func TestTSVHeader_Stable(t *testing.T) {
	const want = "barcode_a\tbarcode_b\tdistance\tsource_a\tsource_b\tindex_a\tindex_b"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
}

func detect(t *testing.T, p clash.Params, first []string, second []string) clash.Result {
	t.Helper()
	s1, sum1 := barcode.Normalize(first)
	in1 := clash.Input{Label: "i7", Set: s1, Summary: sum1}
	var in2 *clash.Input
	if second != nil {
		s2, sum2 := barcode.Normalize(second)
		in2 = &clash.Input{Label: "i5", Set: s2, Summary: sum2}
	}
	res, err := clash.Detect(p, in1, in2)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	return res
}

func TestWriteText(t *testing.T) {
	res := detect(t, clash.Params{Threshold: 1}, []string{"AAAA", "AAAT", "GGGG"}, nil)
	var buf bytes.Buffer
	if err := WriteText(&buf, res.Records, true, false); err != nil {
		t.Fatalf("text: %v", err)
	}
	want := TSVHeader + "\nAAAA\tAAAT\t1\ti7\ti7\t0\t1\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}

	buf.Reset()
	_ = WriteText(&buf, res.Records, false, false)
	if strings.HasPrefix(buf.String(), "barcode_a") {
		t.Fatalf("header written with header=false")
	}

	buf.Reset()
	_ = WriteText(&buf, res.Records, false, true)
	if want := "AAAA\tAAAT\t1\ti7\ti7\t0\t1\n# AAAA  i7 #0\n# |||x  distance 1\n# AAAT  i7 #1\n"; buf.String() != want {
		t.Fatalf("pretty text = %q", buf.String())
	}
}

func TestWriteCSV_SingleAndCross(t *testing.T) {
	res := detect(t, clash.Params{Threshold: 1}, []string{"AAAA", "AAAT"}, nil)
	var buf bytes.Buffer
	if err := WriteCSV(&buf, res, true); err != nil {
		t.Fatalf("csv: %v", err)
	}
	if want := "Barcode 1,Barcode 2,Hamming Distance\nAAAA,AAAT,1\n"; buf.String() != want {
		t.Fatalf("single csv = %q", buf.String())
	}

	cross := detect(t, clash.Params{Mode: clash.ModeCross, Threshold: 1}, []string{"AAAA"}, []string{"AAAT", "TTTT"})
	buf.Reset()
	if err := WriteCSV(&buf, cross, true); err != nil {
		t.Fatalf("csv: %v", err)
	}
	if want := "i7 Barcode,i5 Barcode,Hamming Distance\nAAAA,AAAT,1\n"; buf.String() != want {
		t.Fatalf("cross csv = %q", buf.String())
	}
}

func TestWriteJSON_Report(t *testing.T) {
	res := detect(t, clash.Params{Threshold: 0}, []string{"ACGT", "acgt", "ACXT", ""}, nil)
	var buf bytes.Buffer
	if err := WriteJSON(&buf, ToAPIReport(res, "")); err != nil {
		t.Fatalf("json: %v", err)
	}
	var got api.ReportV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Schema != api.ReportSchemaV1 || got.Mode != "single" || got.ClashCount != 0 {
		t.Fatalf("report = %+v", got)
	}
	if got.Clashes == nil {
		t.Fatalf("clashes should encode as [] not null")
	}
	in := got.Inputs[0]
	if in.Label != "i7" || in.Unique != 1 || in.Duplicate != 1 || in.Invalid != 1 || in.Blank != 1 {
		t.Fatalf("input = %+v", in)
	}
	if len(in.Warnings) != 1 || in.Warnings[0].Line != 3 || in.Warnings[0].Base != "X" {
		t.Fatalf("warnings = %+v", in.Warnings)
	}
	if strings.Contains(buf.String(), "run_id") {
		t.Fatalf("empty run_id should be omitted")
	}
}
