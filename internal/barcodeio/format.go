// Package barcodeio turns barcode sources (plain text, CSV, FASTA/FASTQ,
// compressed files, stdin, S3 objects) into numbered lines for the
// normalizer. It does not validate sequences.
package barcodeio

import (
	"fmt"
	"path"
	"strings"
)

type Format string

const (
	FormatAuto  Format = "auto"
	FormatLines Format = "lines"
	FormatCSV   Format = "csv"
	FormatFASTA Format = "fasta"
)

// ParseFormat validates a user-supplied format name. Empty means auto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatLines, FormatCSV, FormatFASTA:
		return f, nil
	case "txt", "text":
		return FormatLines, nil
	case "fastq", "fa", "fq":
		return FormatFASTA, nil
	}
	return "", fmt.Errorf("invalid input format %q (want auto | lines | csv | fasta)", s)
}

var compressedExt = []string{".gz", ".xz", ".bz2", ".zst"}

// Detect resolves FormatAuto from the source name's extension, ignoring a
// trailing compression suffix. Anything unrecognized is read as lines.
func Detect(src string, f Format) Format {
	if f != FormatAuto && f != "" {
		return f
	}
	name := strings.ToLower(src)
	for _, ext := range compressedExt {
		if strings.HasSuffix(name, ext) {
			name = strings.TrimSuffix(name, ext)
			break
		}
	}
	switch path.Ext(name) {
	case ".csv":
		return FormatCSV
	case ".fa", ".fasta", ".fna", ".fas", ".fq", ".fastq":
		return FormatFASTA
	}
	return FormatLines
}
