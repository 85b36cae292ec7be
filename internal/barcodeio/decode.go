package barcodeio

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"barclash-core/barcode"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

const maxLineBytes = 1 << 20

// ScanLines is a bufio.SplitFunc that ends lines at \n, \r\n or a bare \r.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if !atEOF {
			// \r at the buffer edge: wait to see whether \n follows.
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// DecodeLines reads one barcode per line.
func DecodeLines(r io.Reader) ([]barcode.Line, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)
	sc.Split(ScanLines)
	var out []barcode.Line
	n := 0
	for sc.Scan() {
		n++
		out = append(out, barcode.Line{Number: n, Text: sc.Text()})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeCSV takes the first column of every row after the header row.
// Line numbers are the file lines the values start on.
func DecodeCSV(r io.Reader) ([]barcode.Line, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	var out []barcode.Line
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) == 0 {
			continue
		}
		line, _ := cr.FieldPos(0)
		out = append(out, barcode.Line{Number: line, Text: rec[0]})
	}
	return out, nil
}

// DecodeFastx reads FASTA or FASTQ records from file ("-" for stdin). The
// record sequence is the barcode and the record ordinal is its number.
func DecodeFastx(file string) ([]barcode.Line, error) {
	rd, err := fastx.NewReader(seq.Unlimit, file, "")
	if err != nil {
		return nil, err
	}
	defer rd.Close()

	var out []barcode.Line
	for n := 1; ; n++ {
		rec, err := rd.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("record %d: %w", n, err)
		}
		out = append(out, barcode.Line{Number: n, Text: string(rec.Seq.Seq)})
	}
	return out, nil
}
