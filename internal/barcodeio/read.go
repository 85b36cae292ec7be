package barcodeio

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"barclash-core/barcode"

	"github.com/shenwei356/xopen"
)

// Reader reads barcode sources. The zero value reads local files and stdin;
// an S3 client is created on first use of an s3:// source.
type Reader struct {
	S3     ObjectGetter
	Getenv func(string) string
}

// Read reads src with the default Reader.
func Read(ctx context.Context, src string, f Format) ([]barcode.Line, error) {
	var r Reader
	return r.Read(ctx, src, f)
}

// Read returns the numbered lines of src. src is a path, "-" for stdin, or
// an s3://bucket/key URI.
func (r *Reader) Read(ctx context.Context, src string, f Format) ([]barcode.Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f = Detect(src, f)
	if strings.HasPrefix(src, s3Scheme) {
		return r.readS3(ctx, src, f)
	}
	if f == FormatFASTA {
		lines, err := DecodeFastx(src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src, err)
		}
		return lines, nil
	}

	fh, err := xopen.Ropen(src)
	if err != nil {
		if errors.Is(err, xopen.ErrNoContent) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	defer func() { _ = fh.Close() }()

	var lines []barcode.Line
	switch f {
	case FormatCSV:
		lines, err = DecodeCSV(fh)
	default:
		lines, err = DecodeLines(fh)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	return lines, nil
}

// Inline numbers command-line or request-body barcodes from 1.
func Inline(values []string) []barcode.Line {
	out := make([]barcode.Line, len(values))
	for i, v := range values {
		out[i] = barcode.Line{Number: i + 1, Text: v}
	}
	return out
}
