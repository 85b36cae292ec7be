package barcodeio

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"barclash-core/barcode"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const s3Scheme = "s3://"

// S3 settings read from the environment:
//
//	BARCLASH_S3_REGION=<region> (default us-east-1)
//	BARCLASH_S3_ENDPOINT=<url> (optional, e.g. MinIO)
//	BARCLASH_S3_PATH_STYLE=true|false
//	AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY / AWS_PROFILE as usual
const (
	EnvS3Region    = "BARCLASH_S3_REGION"
	EnvS3Endpoint  = "BARCLASH_S3_ENDPOINT"
	EnvS3PathStyle = "BARCLASH_S3_PATH_STYLE"
)

// ObjectGetter is the subset of *s3.Client used here.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// SplitS3URI splits s3://bucket/key.
func SplitS3URI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(uri, s3Scheme)
	if !ok {
		return "", "", fmt.Errorf("not an s3 uri: %q", uri)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 uri needs bucket and key: %q", uri)
	}
	return bucket, key, nil
}

// NewS3Client builds a client from the default AWS credential chain plus
// BARCLASH_S3_* overrides.
func NewS3Client(ctx context.Context, getenv func(string) string) (*s3.Client, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	region := getenv(EnvS3Region)
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	endpoint := getenv(EnvS3Endpoint)
	pathStyle := strings.EqualFold(getenv(EnvS3PathStyle), "true")
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if pathStyle {
			o.UsePathStyle = true
		}
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func (r *Reader) readS3(ctx context.Context, uri string, f Format) ([]barcode.Line, error) {
	bucket, key, err := SplitS3URI(uri)
	if err != nil {
		return nil, err
	}
	if r.S3 == nil {
		c, err := NewS3Client(ctx, r.Getenv)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", uri, err)
		}
		r.S3 = c
	}
	out, err := r.S3.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(bucket), Key: aws.String(key)})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", uri, err)
	}
	defer func() { _ = out.Body.Close() }()

	var body io.Reader = out.Body
	if strings.HasSuffix(strings.ToLower(key), ".gz") {
		gz, err := gzip.NewReader(out.Body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", uri, err)
		}
		defer func() { _ = gz.Close() }()
		body = gz
	}

	var lines []barcode.Line
	switch f {
	case FormatCSV:
		lines, err = DecodeCSV(body)
	case FormatFASTA:
		lines, err = decodeFastxStream(body)
	default:
		lines, err = DecodeLines(body)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", uri, err)
	}
	return lines, nil
}

// decodeFastxStream spools r to a temporary file for the path-based fastx reader.
func decodeFastxStream(r io.Reader) ([]barcode.Line, error) {
	tmp, err := os.CreateTemp("", "barclash-*.fa")
	if err != nil {
		return nil, err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}
	return DecodeFastx(tmp.Name())
}
