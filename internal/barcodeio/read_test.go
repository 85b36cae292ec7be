package barcodeio

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"barclash-core/barcode"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(lines []barcode.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func numbers(lines []barcode.Line) []int {
	out := make([]int, len(lines))
	for i, l := range lines {
		out[i] = l.Number
	}
	return out
}

func write(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func gz(t *testing.T, s string) []byte {
	t.Helper()
	var b bytes.Buffer
	w := gzip.NewWriter(&b)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return b.Bytes()
}

func TestDetect(t *testing.T) {
	cases := map[string]Format{
		"plate.txt":      FormatLines,
		"plate":          FormatLines,
		"sheet.CSV":      FormatCSV,
		"sheet.csv.gz":   FormatCSV,
		"i7.fasta":       FormatFASTA,
		"i7.fa.xz":       FormatFASTA,
		"reads.fastq.gz": FormatFASTA,
		"-":              FormatLines,
		"s3://b/k.csv":   FormatCSV,
	}
	for src, want := range cases {
		assert.Equal(t, want, Detect(src, FormatAuto), src)
	}
	assert.Equal(t, FormatLines, Detect("sheet.csv", FormatLines))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatAuto, f)
	f, err = ParseFormat("TXT")
	require.NoError(t, err)
	assert.Equal(t, FormatLines, f)
	_, err = ParseFormat("xlsx")
	assert.ErrorContains(t, err, "invalid input format")
}

func TestDecodeLines_AnyLineEnding(t *testing.T) {
	lines, err := DecodeLines(strings.NewReader("ACGT\r\nTTTT\rGGGG\n\nCCCC"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ACGT", "TTTT", "GGGG", "", "CCCC"}, texts(lines))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, numbers(lines))
}

func TestScanLines_CRAtBufferEdge(t *testing.T) {
	adv, tok, err := ScanLines([]byte("AC\r"), false)
	require.NoError(t, err)
	assert.Zero(t, adv)
	assert.Nil(t, tok)

	adv, tok, err = ScanLines([]byte("AC\r"), true)
	require.NoError(t, err)
	assert.Equal(t, 3, adv)
	assert.Equal(t, "AC", string(tok))
}

func TestDecodeCSV_FirstColumnAfterHeader(t *testing.T) {
	in := "barcode,sample\nACGT,s1\n\"TT\nTT\",s2\nGGGG\n"
	lines, err := DecodeCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"ACGT", "TT\nTT", "GGGG"}, texts(lines))
	assert.Equal(t, []int{2, 3, 5}, numbers(lines))

	empty, err := DecodeCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRead_PlainAndGzip(t *testing.T) {
	plain := write(t, "set.txt", []byte(" acgt \nTTTT\n"))
	lines, err := Read(context.Background(), plain, FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, []string{" acgt ", "TTTT"}, texts(lines))

	zipped := write(t, "set.csv.gz", gz(t, "bc\nAAAA\nCCCC\n"))
	lines, err = Read(context.Background(), zipped, FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAAA", "CCCC"}, texts(lines))
}

func TestRead_Fasta(t *testing.T) {
	p := write(t, "i7.fa", []byte(">bc1\nacgt\n>bc2 second\nACGT\nAC\n"))
	lines, err := Read(context.Background(), p, FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, []string{"acgt", "ACGTAC"}, texts(lines))
	assert.Equal(t, []int{1, 2}, numbers(lines))
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), FormatAuto)
	assert.ErrorContains(t, err, "nope.txt")
}

func TestRead_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Read(ctx, "whatever.txt", FormatAuto)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInline(t *testing.T) {
	lines := Inline([]string{"ACGT", "tttt"})
	assert.Equal(t, []int{1, 2}, numbers(lines))
	assert.Equal(t, []string{"ACGT", "tttt"}, texts(lines))
}

type fakeS3 map[string][]byte

func (f fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	b, ok := f[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func TestRead_S3(t *testing.T) {
	r := &Reader{S3: fakeS3{
		"runs/plate1.txt":   []byte("ACGT\nAAAA\n"),
		"runs/sheet.csv.gz": gz(t, "bc,x\nCCCC,1\n"),
		"runs/index.fasta":  []byte(">a\nGGGG\n"),
	}}
	ctx := context.Background()

	lines, err := r.Read(ctx, "s3://runs/plate1.txt", FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, []string{"ACGT", "AAAA"}, texts(lines))

	lines, err = r.Read(ctx, "s3://runs/sheet.csv.gz", FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, []string{"CCCC"}, texts(lines))

	lines, err = r.Read(ctx, "s3://runs/index.fasta", FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, []string{"GGGG"}, texts(lines))

	_, err = r.Read(ctx, "s3://runs/missing.txt", FormatAuto)
	assert.ErrorContains(t, err, "s3://runs/missing.txt")
}

func TestSplitS3URI(t *testing.T) {
	b, k, err := SplitS3URI("s3://bucket/dir/key.txt")
	require.NoError(t, err)
	assert.Equal(t, "bucket", b)
	assert.Equal(t, "dir/key.txt", k)

	for _, bad := range []string{"s3://bucket", "s3:///key", "http://x/y"} {
		_, _, err := SplitS3URI(bad)
		assert.Error(t, err, bad)
	}
}
